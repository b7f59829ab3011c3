package model

import (
	"time"

	"samaritans-api/pkg/geo"
)

// ItemStatus is the lifecycle state of a listing.
type ItemStatus string

const (
	StatusOffered  ItemStatus = "Offered"
	StatusReserved ItemStatus = "Reserved"
	StatusPickedUp ItemStatus = "PickedUp"
)

// Item is a single donation listing. Weight and volume are stored in
// canonical SI units (kg, m³); unit conversion happens at the API boundary.
type Item struct {
	ID          string
	Category    int
	Description string

	WeightKg *float64
	VolumeM3 *float64

	BestBefore *time.Time // calendar date, "discard after"

	PickupLocation    geo.Point
	PickupWindowStart string // "HH:MM", local time of day
	PickupWindowEnd   string

	ImageURL string

	PostedBy      string // samaritan user ID
	AvailableTill time.Time
	IsActive      bool

	IsReserved   bool
	ReservedBy   string // organization user ID, empty unless reserved
	ReservedTill *time.Time

	IsPickedUp bool
	PickedUpBy string
	PickupTime *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status derives the lifecycle state from the stored booleans.
// Invariant: is_picked_up implies is_reserved, enforced by the store.
func (i Item) Status() ItemStatus {
	switch {
	case i.IsPickedUp:
		return StatusPickedUp
	case i.IsReserved:
		return StatusReserved
	default:
		return StatusOffered
	}
}
