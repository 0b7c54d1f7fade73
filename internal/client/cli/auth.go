package cli

import (
	"context"
	"os"

	"github.com/ahaducoin/tapcoin/internal/client/models"
	"github.com/ahaducoin/tapcoin/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register walks the user through the sign-up form and submits it.
//
// Validation happens locally before anything is sent: empty fields, a
// password mismatch or a too-short password are all reported at once and no
// request leaves the machine. Passwords are securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.WipeByteArray(confirm)

	reg := models.Registration{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Username:        username,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	}

	if err := a.auth.Register(ctx, reg); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Account created, you can login now.")
	return nil
}

// Login prompts for credentials, authenticates and, on success, starts the
// authenticated session (including the balance ticker).
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.WipeByteArray(password)

	if err := a.auth.Login(ctx, username, string(password)); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.beginSession(ctx, username)
	printlnFn("Welcome,", username+"!")
	return nil
}

// WhoAmI prints the username of the active session.
func (a *App) WhoAmI(ctx context.Context) error {
	printlnFn("Logged in as", a.currentUser())
	return nil
}

// Logout ends the session: the ticker stops, the durable slot is cleared and
// the server is told on a best-effort basis.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}

	a.endSession()
	printlnFn("Logged out.")
	return nil
}
