package app

import (
	"context"
	"errors"

	"github.com/diewo77/billing-client/internal/logger"
	"github.com/diewo77/billing-client/internal/validation"
)

// ErrInvalidCredentials is a local precondition failure: the typed username
// or password cannot possibly be accepted, so no request is issued.
var ErrInvalidCredentials = errors.New("username must be alphanumeric and password at least 6 characters")

// Login exchanges credentials for a session token and stores it.
func (a *App) Login(ctx context.Context, username, password string) error {
	ctx = logger.WithAction(ctx, "login")

	token, err := a.gw.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return a.sessions.Set(token)
}

// Register creates the account and stores its first token. Field rules are
// advisory everywhere else, but garbage credentials are rejected locally
// here since the server will never accept them.
func (a *App) Register(ctx context.Context, username, password string) error {
	ctx = logger.WithAction(ctx, "register")

	if validation.UsernameInvalid(username) || validation.PasswordInvalid(password) {
		return ErrInvalidCredentials
	}

	token, err := a.gw.Register(ctx, username, password)
	if err != nil {
		return err
	}
	return a.sessions.Set(token)
}

// Logout clears the stored credential. Purely local.
func (a *App) Logout(ctx context.Context) error {
	a.log.InfoContext(logger.WithAction(ctx, "logout"), "clearing session")
	return a.sessions.Clear()
}

// DeleteAccount clears all local state after confirmation. The backend has
// no account-deletion endpoint; locally the effect equals a logout.
func (a *App) DeleteAccount(ctx context.Context, confirm Confirm) error {
	if confirm != nil && !confirm("confirm_delete_account") {
		return nil
	}
	a.log.InfoContext(logger.WithAction(ctx, "delete-account"), "clearing local account state")
	return a.sessions.Clear()
}

// ChangePassword rotates the password. The confirmation mismatch is caught
// locally; everything else is the server's call.
func (a *App) ChangePassword(ctx context.Context, current, next, confirm string) (string, error) {
	ctx = logger.WithAction(ctx, "change-password")

	if next != confirm {
		return "", errors.New("new passwords do not match")
	}
	return a.gw.ChangePassword(ctx, current, next, confirm)
}
