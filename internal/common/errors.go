// Package common defines shared constants and sentinel errors used across
// the my-space client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("repository unavailable")

	// Validation errors, raised before any repository call.
	ErrValidation = errors.New("validation error")

	// Auth / session errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrNoSession    = errors.New("no stored session")
)
