// Package cli implements the interactive tapcoin client: a read–eval–print
// loop whose command set depends on whether a session is established. All
// rendering lives here; the state it renders comes from the service layer.
package cli
