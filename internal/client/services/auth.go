// Package services contains application services for the my-space client.
// This file defines the authentication service: demo-account login, session
// restore from the local store, and logout.
package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/RANGASWAMY-MK/my-space/internal/auth"
	"github.com/RANGASWAMY-MK/my-space/internal/client/config"
	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
	"github.com/RANGASWAMY-MK/my-space/internal/client/repositories/session"
	"github.com/RANGASWAMY-MK/my-space/internal/common"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: verify credentials against the demo account, mint a session
//     token and persist it locally.
//   - Restore: rebuild the user from the locally persisted session, if any.
//   - Logout: drop the persisted session.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, userID string, password []byte) (*models.User, error)
	Restore(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// authService is the concrete AuthService backed by the demo credentials in
// cfg and a local key-value store for the session.
type authService struct {
	sessions session.Repository
	cfg      *config.Config
}

// NewAuthService constructs an AuthService bound to the given session store.
func NewAuthService(sessions session.Repository, cfg *config.Config) AuthService {
	return &authService{sessions: sessions, cfg: cfg}
}

// Login verifies (userID, password) against the demo account. On success it
// mints a signed session token, persists it together with the user id, and
// returns the logged-in user. Bad credentials yield common.ErrUnauthorized
// without distinguishing which part was wrong.
func (a *authService) Login(ctx context.Context, userID string, password []byte) (*models.User, error) {
	idOK := subtle.ConstantTimeCompare([]byte(userID), []byte(a.cfg.DemoUserID)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(a.cfg.DemoPasswordHash), password)
	if !idOK || passErr != nil {
		return nil, common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(userID, []byte(a.cfg.SecretKey), a.cfg.TokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("generate token error: %w", err)
	}

	if err := a.sessions.Set(ctx, session.KeyAuthToken, token); err != nil {
		return nil, fmt.Errorf("save session error: %w", err)
	}
	if err := a.sessions.Set(ctx, session.KeyUserID, userID); err != nil {
		return nil, fmt.Errorf("save session error: %w", err)
	}

	return &models.User{ID: userID, Token: token}, nil
}

// Restore rebuilds the user from the persisted session. It returns
// common.ErrNoSession when nothing is stored and common.ErrInvalidToken when
// the stored token does not verify (expired or tampered).
func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	token, err := a.sessions.Get(ctx, session.KeyAuthToken)
	if err != nil {
		return nil, fmt.Errorf("read session error: %w", err)
	}
	if token == "" {
		return nil, common.ErrNoSession
	}

	userID, err := auth.UserIDFromToken(token, []byte(a.cfg.SecretKey))
	if err != nil {
		return nil, err
	}

	return &models.User{ID: userID, Token: token}, nil
}

// Logout drops the persisted session. Logging out without a session is not
// an error.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Delete(ctx, session.KeyAuthToken); err != nil {
		return fmt.Errorf("clear session error: %w", err)
	}
	if err := a.sessions.Delete(ctx, session.KeyUserID); err != nil {
		return fmt.Errorf("clear session error: %w", err)
	}
	return nil
}
