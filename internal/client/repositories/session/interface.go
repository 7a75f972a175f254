// Package session is the key-value port behind which the client persists
// its login session (token and user id). It replaces ambient browser-style
// storage with an explicitly owned store: loaded at startup, written on
// login, cleared on logout.
package session

import "context"

// Repository is a small durable key-value store.
type Repository interface {
	// Get returns the value for key, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every stored key.
	Clear(ctx context.Context) error
}

// Well-known session keys.
const (
	KeyAuthToken = "auth_token"
	KeyUserID    = "user_id"
)
