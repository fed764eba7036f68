package cli

import (
	"context"
	"os"

	"bookreview/internal/client/controllers"
)

// Input indirections used to facilitate testing. They point to the
// interactive helpers and can be swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getInt          = GetInt
	getConfirmation = GetConfirmation
	getPassword     = GetPassword
)

// SignIn prompts for credentials and authenticates. On success the token
// is persisted by the auth form and the signed-in command set opens up.
func (a *App) SignIn(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	a.auth.SetCredentials(username, "", password)
	if err := a.auth.Submit(ctx); err != nil {
		a.guard(ctx, err)
		return err
	}

	printlnFn("Signed in.")
	return nil
}

// SignUp prompts for the registration fields and creates an account. A
// successful sign-up does not authenticate; the user is returned to the
// sign-in prompt with a confirmation message.
func (a *App) SignUp(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if a.auth.Mode() != controllers.AuthModeSignUp {
		a.auth.ToggleMode()
	}
	a.auth.SetCredentials(username, email, password)
	if err := a.auth.Submit(ctx); err != nil {
		a.guard(ctx, err)
		return err
	}

	printlnFn(a.auth.Message())
	return nil
}

// Logout clears the persisted token and closes any open detail screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.detail = nil
	printlnFn("Signed out.")
	return nil
}
