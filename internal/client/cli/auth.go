package cli

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotLoggedIn = errors.New("not logged in")

// Register prompts for email, password and an optional display name and
// signs the new account in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name (empty to use the email)", a.out)
	if err != nil {
		return err
	}

	u, err := a.session.Register(ctx, email, password, name)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", u.Name))
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	u, err := a.session.Login(ctx, email, password)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Signed in as %s", u.Email))
	return nil
}

// Logout ends the session. It does not fail.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Signed out")
	return nil
}

// Whoami prints the signed-in user and their subscription.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.State().User
	if u == nil {
		return errNotLoggedIn
	}

	printlnFn(fmt.Sprintf("%s <%s> (%s)", u.Name, u.Email, u.Role))
	if s := u.Subscription; s != nil {
		printlnFn(fmt.Sprintf("Plan: %s, status: %s, expires: %s", s.Plan, s.Status, s.ExpiresAt.Format(time.DateOnly)))
	}
	return nil
}
