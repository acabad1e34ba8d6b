// Package common defines shared constants and sentinel errors used across
// the NewsBoard store, services and surfaces. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Authorization errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotLoggedIn    = errors.New("not logged in")

	// Moderation errors.
	ErrInvalidTransition = errors.New("invalid status transition")

	// Engagement errors.
	ErrLikeLimit = errors.New("like limit reached")

	// Auth errors.
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")

	// Validation errors.
	ErrValidation = errors.New("validation error")
)
