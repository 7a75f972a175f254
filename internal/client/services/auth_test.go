package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RANGASWAMY-MK/my-space/internal/auth"
	"github.com/RANGASWAMY-MK/my-space/internal/client/config"
	"github.com/RANGASWAMY-MK/my-space/internal/client/repositories/session"
	"github.com/RANGASWAMY-MK/my-space/internal/common"
)

// memSessions is an in-memory session.Repository for tests.
type memSessions struct {
	values map[string]string
}

func newMemSessions() *memSessions {
	return &memSessions{values: make(map[string]string)}
}

func (m *memSessions) Get(ctx context.Context, key string) (string, error) {
	return m.values[key], nil
}

func (m *memSessions) Set(ctx context.Context, key string, value string) error {
	m.values[key] = value
	return nil
}

func (m *memSessions) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func (m *memSessions) Clear(ctx context.Context) error {
	m.values = make(map[string]string)
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

func TestLogin_Success(t *testing.T) {
	sessions := newMemSessions()
	svc := NewAuthService(sessions, testConfig())

	user, err := svc.Login(context.Background(), "23022-CM-032", []byte("23438-CM-069"))
	require.NoError(t, err)

	assert.Equal(t, "23022-CM-032", user.ID)
	assert.NotEmpty(t, user.Token)
	assert.Equal(t, user.Token, sessions.values[session.KeyAuthToken])
	assert.Equal(t, user.ID, sessions.values[session.KeyUserID])
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := NewAuthService(newMemSessions(), testConfig())

	tests := []struct {
		name     string
		userID   string
		password string
	}{
		{name: "wrong password", userID: "23022-CM-032", password: "nope"},
		{name: "wrong user id", userID: "someone-else", password: "23438-CM-069"},
		{name: "both wrong", userID: "someone-else", password: "nope"},
		{name: "empty", userID: "", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(context.Background(), tt.userID, []byte(tt.password))
			assert.ErrorIs(t, err, common.ErrUnauthorized)
			assert.Nil(t, user)
		})
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	sessions := newMemSessions()
	svc := NewAuthService(sessions, testConfig())

	logged, err := svc.Login(context.Background(), "23022-CM-032", []byte("23438-CM-069"))
	require.NoError(t, err)

	restored, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, logged.ID, restored.ID)
	assert.Equal(t, logged.Token, restored.Token)
}

func TestRestore_NoSession(t *testing.T) {
	svc := NewAuthService(newMemSessions(), testConfig())

	user, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, common.ErrNoSession)
	assert.Nil(t, user)
}

func TestRestore_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	sessions := newMemSessions()

	expired, err := auth.GenerateToken(cfg.DemoUserID, []byte(cfg.SecretKey), -time.Minute)
	require.NoError(t, err)
	sessions.values[session.KeyAuthToken] = expired

	svc := NewAuthService(sessions, cfg)

	user, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	assert.Nil(t, user)
}

func TestRestore_TamperedToken(t *testing.T) {
	cfg := testConfig()
	sessions := newMemSessions()

	token, err := auth.GenerateToken(cfg.DemoUserID, []byte("some-other-secret"), time.Hour)
	require.NoError(t, err)
	sessions.values[session.KeyAuthToken] = token

	svc := NewAuthService(sessions, cfg)

	_, err = svc.Restore(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	sessions := newMemSessions()
	svc := NewAuthService(sessions, testConfig())

	_, err := svc.Login(context.Background(), "23022-CM-032", []byte("23438-CM-069"))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))

	assert.Empty(t, sessions.values[session.KeyAuthToken])
	assert.Empty(t, sessions.values[session.KeyUserID])

	// Logging out twice is fine.
	assert.NoError(t, svc.Logout(context.Background()))
}
