package item

import "errors"

// Domain-specific errors for the item package.
var (
	ErrItemNotFound           = errors.New("item not found")
	ErrInvalidStateTransition = errors.New("item is not in the required state for this transition")
	ErrNotReservingOrg        = errors.New("item is reserved by another organization")

	ErrSamaritanOnly    = errors.New("only samaritans can donate items")
	ErrOrganizationOnly = errors.New("only organizations can perform this action")

	ErrInvalidCategory    = errors.New("invalid category")
	ErrMissingDescription = errors.New("description is required")
	ErrInvalidQuantity    = errors.New("weight and volume must be positive")
	ErrUnknownUnit        = errors.New("unknown weight or volume unit")
	ErrInvalidBestBefore  = errors.New("invalid best_before date format, use YYYY-MM-DD")
	ErrBestBeforeInPast   = errors.New("best before date cannot be in the past")
	ErrInvalidRadius      = errors.New("radius must be positive")
	ErrNoLocation         = errors.New("organization location not set")
)
