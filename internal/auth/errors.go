package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrUsernameOrEmailTaken = errors.New("username or email already taken")
	ErrInvalidCredentials   = errors.New("invalid username or password")

	ErrMissingUsername   = errors.New("username is required")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
	ErrMissingName       = errors.New("organization name is required")
	ErrInvalidProvince   = errors.New("invalid province code")
	ErrInvalidPostalCode = errors.New("invalid postal code")
)
