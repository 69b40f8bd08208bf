package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Key errors
	// ErrKeyUnavailable means the symmetric key is missing or unreadable.
	// Fatal for the session: no credential can be encrypted or verified.
	ErrKeyUnavailable = errors.New("encryption key unavailable")

	// Game errors
	ErrGameComplete = errors.New("game is already complete")
)
