package item

import (
	"context"

	"samaritans-api/internal/model"
)

// UseCase defines the business logic interface for the item domain.
type UseCase interface {
	// Donate creates a new listing in the Offered state. Samaritans only.
	Donate(ctx context.Context, sc model.Scope, input DonateInput) (DonateOutput, error)

	// Browse returns a page of offered listings near the acting organization,
	// ordered by distance. Organizations only.
	Browse(ctx context.Context, sc model.Scope, input BrowseInput) (BrowseOutput, error)

	// Categories returns the immutable category reference table.
	Categories(ctx context.Context) (CategoriesOutput, error)

	// Reserve transitions Offered → Reserved, binding the item to the acting
	// organization. A lost race surfaces ErrInvalidStateTransition.
	Reserve(ctx context.Context, sc model.Scope, itemID string) (LifecycleOutput, error)

	// Unreserve transitions Reserved → Offered, clearing all reservation
	// metadata. Only the reserving organization may call it.
	Unreserve(ctx context.Context, sc model.Scope, itemID string) (LifecycleOutput, error)

	// Pickup transitions Reserved → PickedUp. Only the reserving organization
	// may call it; PickedUp is terminal.
	Pickup(ctx context.Context, sc model.Scope, itemID string) (LifecycleOutput, error)

	// OrganizationHistory returns the acting organization's reserved and
	// picked-up listings, each independently paginated.
	OrganizationHistory(ctx context.Context, sc model.Scope, input HistoryInput) (OrganizationHistoryOutput, error)

	// SamaritanHistory returns the acting samaritan's donated listings split
	// into picked-up and not-yet-picked-up, each independently paginated.
	SamaritanHistory(ctx context.Context, sc model.Scope, input HistoryInput) (SamaritanHistoryOutput, error)
}
