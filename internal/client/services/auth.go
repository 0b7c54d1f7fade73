// Package services contains the application services of the tapcoin client:
// session management, clan membership synchronization, the balance ticker
// and the leaderboard fetch.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ahaducoin/tapcoin/internal/client/api"
	"github.com/ahaducoin/tapcoin/internal/client/models"
	"github.com/ahaducoin/tapcoin/internal/logging"
)

// AuthService owns the bearer token lifecycle.
//
// Contract:
//   - Login: authenticate against the backend, persist the session durably.
//   - Register: validate the form locally, then create the account; nothing
//     is stored (the user logs in afterwards).
//   - Restore: load the persisted session at startup without a backend
//     round-trip; the first rejected call invalidates it.
//   - Logout: best-effort server invalidation, then unconditionally clear
//     the durable slot.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, reg models.Registration) error
	Restore(ctx context.Context) (username string, ok bool, err error)
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  *TokenStore
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// token store.
func NewAuthService(client api.Client, store *TokenStore, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

// Login submits credentials and persists the issued token. On failure the
// previously stored session, if any, is left untouched.
func (a *authService) Login(ctx context.Context, username, password string) error {
	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := a.store.Save(ctx, token, username); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	a.log.Info(ctx, "session established", "username", username)
	return nil
}

// Register validates the form locally first; the backend is only contacted
// when every local check passes.
func (a *authService) Register(ctx context.Context, reg models.Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	return a.client.Register(ctx, reg)
}

// Restore loads the persisted session. A present token means authenticated;
// no backend validation happens here. Tokens that parse as a JWT with an
// expiry already in the past are discarded eagerly; opaque tokens are
// accepted as-is.
func (a *authService) Restore(ctx context.Context) (string, bool, error) {
	token, username, err := a.store.Load(ctx)
	if err != nil {
		return "", false, err
	}
	if token == "" {
		return "", false, nil
	}

	if tokenExpired(token) {
		a.log.Info(ctx, "stored token expired, discarding")
		if _, err := a.store.Clear(ctx); err != nil {
			return "", false, err
		}
		return "", false, nil
	}

	return username, true, nil
}

// Logout invalidates the session server-side on a best-effort basis and
// clears the durable slot regardless of the call outcome.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout request failed, clearing session anyway", "error", err)
	}

	if _, err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// tokenExpired inspects the token without verifying its signature — the
// client has no key material and treats the token as opaque otherwise.
// Only a parseable JWT with an exp claim in the past counts as expired.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
