package item

import (
	"strings"
	"time"

	"samaritans-api/internal/model"
	"samaritans-api/pkg/geo"
)

// Criteria are the page-local filters. Empty fields match everything;
// non-empty fields compose with AND semantics.
type Criteria struct {
	SearchText string
	BestBefore string // "YYYY-MM-DD"
}

// ApplyLocalFilters keeps the listings on the current page that match all
// non-empty criteria. Pure: the input slice is not modified, and applying
// the same criteria twice yields the same result as applying them once.
func ApplyLocalFilters(items []model.Item, c Criteria) []model.Item {
	out := make([]model.Item, 0, len(items))
	search := strings.ToLower(c.SearchText)

	for _, it := range items {
		if search != "" && !strings.Contains(strings.ToLower(it.Description), search) {
			continue
		}
		if c.BestBefore != "" && !matchesBestBefore(it, c.BestBefore) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesBestBefore(it model.Item, date string) bool {
	if it.BestBefore == nil {
		return false
	}
	return it.BestBefore.Format(time.DateOnly) == date
}

// WithinRadius keeps the listings whose pickup location lies within radiusKm
// of origin. The store applies the radius filter server-side; this is the
// reproducible fallback used as a test oracle and for page-local re-checks.
func WithinRadius(items []model.Item, origin geo.Point, radiusKm float64) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if geo.DistanceKm(origin, it.PickupLocation) <= radiusKm {
			out = append(out, it)
		}
	}
	return out
}
