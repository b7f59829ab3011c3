package item

import (
	"time"

	"samaritans-api/internal/model"
	"samaritans-api/pkg/geo"
)

// Quantity is a numeric amount with a unit tag as received at the boundary.
type Quantity struct {
	Value float64
	Unit  string
}

// DonateInput is the input for creating a listing.
type DonateInput struct {
	Category    int
	Description string

	Weight *Quantity // optional, converted to kg
	Volume *Quantity // optional, converted to m³

	BestBefore string // optional, "YYYY-MM-DD"

	PickupLocation    geo.Point
	PickupWindowStart string // optional, "HH:MM"
	PickupWindowEnd   string

	ImageURL string

	AvailableTill *time.Time // optional, defaults to now + offer TTL
}

// DonateOutput is the created listing.
type DonateOutput struct {
	Item model.Item
}

// BrowseInput is the input for the organization browse view.
type BrowseInput struct {
	Page     int
	PerPage  int
	RadiusKm float64
	Category int // model.CategoryAll means no filter

	// Page-local filters, applied to the fetched page only.
	SearchText string
	BestBefore string // "YYYY-MM-DD"
}

// BrowseItem is a listing annotated with its distance from the organization.
type BrowseItem struct {
	Item       model.Item
	DistanceKm float64
}

// BrowseOutput is one page of browse results.
type BrowseOutput struct {
	Items      []BrowseItem
	Page       int
	TotalPages int
	TotalItems int
}

// CategoriesOutput is the category reference table.
type CategoriesOutput struct {
	Options map[int]string
}

// LifecycleOutput is the authoritative item state after a transition,
// re-read from the store rather than constructed optimistically.
type LifecycleOutput struct {
	Item model.Item
}

// HistoryInput is the input for both history views.
type HistoryInput struct {
	Page     int
	PerPage  int
	Category int // model.CategoryAll means no filter
}

// HistoryPage is one independently-paginated block of a history view.
type HistoryPage struct {
	Items      []model.Item
	TotalPages int
	TotalItems int
}

// OrganizationHistoryOutput holds the organization's claim history.
type OrganizationHistoryOutput struct {
	Page     int
	Reserved HistoryPage
	PickedUp HistoryPage
}

// SamaritanHistoryOutput holds the samaritan's donation history.
type SamaritanHistoryOutput struct {
	Page        int
	PickedUp    HistoryPage
	NotPickedUp HistoryPage
}
