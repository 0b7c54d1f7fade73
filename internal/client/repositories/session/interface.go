// Package session persists the durable session slot: a tiny key-value table
// holding the sealed bearer token and the data needed to unseal it.
package session

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key and reports whether a row was actually deleted.
	// The report comes from the delete statement itself, so concurrent
	// callers racing on the same key agree on a single winner.
	Delete(ctx context.Context, key string) (bool, error)

	Clear(ctx context.Context) error
}
