package repository

import (
	"context"
	"time"

	"samaritans-api/internal/model"
)

// Repository is the composed interface for the item domain data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
// The store is the single authority for reservation exclusivity: every
// lifecycle transition is a single conditional UPDATE, so concurrent
// claimants resolve to exactly one winner.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)

	// GetOneItem returns the zero-value Item (ID == "") when not found.
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)

	// ListOffered returns all active, unexpired, unclaimed items matching the
	// filters. Geometric filtering and pagination happen in the use case.
	ListOffered(ctx context.Context, opt ListOfferedOptions) ([]model.Item, error)

	// ListHistory returns a page of items plus the total match count.
	ListHistory(ctx context.Context, opt ListHistoryOptions) ([]model.Item, int, error)

	// Reserve, Unreserve and Pickup apply conditional transitions and return
	// the re-read row. ErrNoTransition means the WHERE guard matched nothing.
	Reserve(ctx context.Context, opt ReserveOptions) (model.Item, error)
	Unreserve(ctx context.Context, opt UnreserveOptions) (model.Item, error)
	Pickup(ctx context.Context, opt PickupOptions) (model.Item, error)

	// DeactivateExpired clears the active flag on unclaimed items whose
	// available_till has passed. Returns the number of rows swept.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
