package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")

	// ErrNoTransition means a conditional lifecycle UPDATE matched no row:
	// the item either does not exist or is not in the guarded state.
	ErrNoTransition = errors.New("no matching row for state transition")
)
