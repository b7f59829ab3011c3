package item

import "strings"

// Conversion factors to canonical SI units.
const (
	lbToKg   = 0.45359237
	ft3ToM3  = 0.028316846592
	CanonKg  = "kg"
	CanonM3  = "m³"
)

// NormalizeWeight converts a weight quantity to kilograms.
// Accepted units: kg, lb/lbs.
func NormalizeWeight(q Quantity) (float64, error) {
	if q.Value <= 0 {
		return 0, ErrInvalidQuantity
	}
	switch strings.ToLower(strings.TrimSpace(q.Unit)) {
	case "kg", "":
		return q.Value, nil
	case "lb", "lbs":
		return q.Value * lbToKg, nil
	default:
		return 0, ErrUnknownUnit
	}
}

// NormalizeVolume converts a volume quantity to cubic meters.
// Accepted units: m³/m3, ft³/ft3.
func NormalizeVolume(q Quantity) (float64, error) {
	if q.Value <= 0 {
		return 0, ErrInvalidQuantity
	}
	switch strings.ToLower(strings.TrimSpace(q.Unit)) {
	case "m³", "m3", "":
		return q.Value, nil
	case "ft³", "ft3":
		return q.Value * ft3ToM3, nil
	default:
		return 0, ErrUnknownUnit
	}
}
