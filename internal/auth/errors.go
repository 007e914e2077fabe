package auth

import "errors"

// Lifecycle failure kinds. Handlers match these with errors.Is and map them
// to HTTP statuses; anything else is a server error.
var (
	ErrMissingFields         = errors.New("all fields are required")
	ErrDuplicateEmail        = errors.New("user already exists")
	ErrInvalidOrExpiredCode  = errors.New("invalid or expired verification code")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
)
