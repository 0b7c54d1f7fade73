// Package models holds the client-side data model for the tap-coin backend:
// users, clans and the registration form, with JSON tags matching the wire
// format the backend speaks.
package models

import (
	"errors"
	"strings"
)

// User is a backend user profile. CoinBalance is authoritative on the server;
// the client only mirrors it between polls.
type User struct {
	Username    string `json:"username"`
	CoinBalance int64  `json:"coin_balance"`
}

// MinPasswordLen is the minimum accepted password length, checked locally
// before any network call.
const MinPasswordLen = 6

// Validation errors for the registration form. The messages are shown to the
// user verbatim, so they are full sentences.
var (
	ErrFieldsRequired   = errors.New("All fields are required.")
	ErrPasswordMismatch = errors.New("Passwords do not match.")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters long.")
)

// Registration is the auth-register request body. ConfirmPassword never goes
// over the wire; it only participates in local validation.
type Registration struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

// Validate checks the form locally and reports every violation at once,
// joined into a single error. A nil result means the form may be submitted.
func (r *Registration) Validate() error {
	var errs []error

	for _, f := range []string{r.FirstName, r.LastName, r.Email, r.Username, r.Password, r.ConfirmPassword} {
		if strings.TrimSpace(f) == "" {
			errs = append(errs, ErrFieldsRequired)
			break
		}
	}

	if r.Password != r.ConfirmPassword {
		errs = append(errs, ErrPasswordMismatch)
	}
	if len(r.Password) < MinPasswordLen {
		errs = append(errs, ErrPasswordTooShort)
	}

	return errors.Join(errs...)
}
