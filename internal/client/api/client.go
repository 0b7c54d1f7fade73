// Package api implements the REST client for the tap-coin backend. All
// authenticated traffic goes through a single request wrapper that attaches
// the current bearer token and handles authentication rejection in one place.
package api

import (
	"context"

	"github.com/ahaducoin/tapcoin/internal/client/models"
)

// TokenSource provides the currently stored bearer token. Token must always
// return the freshest stored value, never a copy cached at construction time.
type TokenSource interface {
	// Token returns the stored token, or "" when no session exists.
	Token(ctx context.Context) (string, error)

	// Invalidate clears the stored token. It reports whether a token was
	// actually cleared, so a burst of concurrent 401s invalidates once.
	Invalidate(ctx context.Context) (bool, error)
}

// Client is the remote API surface consumed by the service layer.
//
// Contract:
//   - Login returns the access token issued by the backend; it does not
//     store anything.
//   - Every other authenticated call carries the TokenSource's current token.
//   - A 401 on an authenticated route clears the session slot and surfaces
//     ErrUnauthorized.
//   - 4xx responses with a business message surface as *DomainError with the
//     backend's text verbatim.
type Client interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, reg models.Registration) error
	Logout(ctx context.Context) error

	CurrentUser(ctx context.Context) (*models.User, error)
	IncrementBalance(ctx context.Context, amount int64) error
	ListUsers(ctx context.Context) ([]models.User, error)

	ListClans(ctx context.Context) ([]models.Clan, error)
	CreateClan(ctx context.Context, name, description string) (*models.Clan, error)
	JoinClan(ctx context.Context, clanID string) error
	LeaveClan(ctx context.Context, clanID string) error
	DeleteClan(ctx context.Context, clanID string) error
}
