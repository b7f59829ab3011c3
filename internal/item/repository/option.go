package repository

import (
	"time"

	"samaritans-api/pkg/geo"
)

// CreateItemOptions holds parameters for inserting a new Item.
// Quantities are already normalized to SI units.
type CreateItemOptions struct {
	Category    int
	Description string

	WeightKg *float64
	VolumeM3 *float64

	BestBefore *time.Time

	PickupLocation    geo.Point
	PickupWindowStart string
	PickupWindowEnd   string

	ImageURL string

	PostedBy      string
	AvailableTill time.Time
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
// All non-empty fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID string
}

// ListOfferedOptions holds filters for the browse candidate set.
type ListOfferedOptions struct {
	Category int       // 0 means no filter
	Now      time.Time // items with available_till before Now are excluded
}

// ListHistoryOptions holds filter and pagination parameters for the history
// views. Exactly one of PostedBy / ReservedBy / PickedUpBy is set.
type ListHistoryOptions struct {
	PostedBy   string
	ReservedBy string
	PickedUpBy string

	// PickedUp partitions the result when non-nil.
	PickedUp *bool

	Category int // 0 means no filter
	Limit    int
	Offset   int
	OrderBy  string
}

// ReserveOptions holds parameters for the Offered → Reserved transition.
type ReserveOptions struct {
	ItemID       string
	ReservedBy   string
	ReservedTill time.Time
}

// UnreserveOptions holds parameters for the Reserved → Offered transition.
// ReservedBy guards that only the holding organization can release.
type UnreserveOptions struct {
	ItemID     string
	ReservedBy string
}

// PickupOptions holds parameters for the Reserved → PickedUp transition.
type PickupOptions struct {
	ItemID     string
	PickedUpBy string
	PickupTime time.Time
}
