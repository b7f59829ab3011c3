package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert user")
	ErrFailedToGet    = errors.New("failed to get user")

	// ErrDuplicate is returned when a unique constraint (username or email)
	// rejects the insert.
	ErrDuplicate = errors.New("username or email already taken")
)
