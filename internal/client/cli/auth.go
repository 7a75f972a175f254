package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/RANGASWAMY-MK/my-space/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for the account id and password and authenticates against
// the demo account.
//
// On success it stores the user, loads the drive listing and renders it.
// Bad credentials are reported to the user rather than returned, so the
// REPL keeps running. The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter account id", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, userID, password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Invalid credentials")
			return nil
		}
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Welcome, %s\n", user.ID)

	a.dashboard.Refresh(ctx)
	a.renderListing()
	return nil
}

// Logout drops the persisted session and forgets the in-memory user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.user = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
