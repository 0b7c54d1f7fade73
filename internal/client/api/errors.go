package api

import "errors"

var (
	// ErrUnavailable means the request never got a response: connection
	// failure, timeout or cancellation.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is the mapped form of a 401. For authenticated routes
	// the client has already cleared the session slot by the time callers
	// see this error.
	ErrUnauthorized = errors.New("unauthorized")
)

// DomainError carries a business-rule rejection from the backend (a 4xx with
// a "detail" message, e.g. "User already belongs to a clan"). The message is
// shown to the user verbatim.
type DomainError struct {
	Status  int
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
