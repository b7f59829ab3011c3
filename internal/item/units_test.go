package item_test

import (
	"errors"
	"math"
	"testing"

	"samaritans-api/internal/item"
)

func TestNormalizeWeight(t *testing.T) {
	t.Run("Kilograms Pass Through", func(t *testing.T) {
		kg, err := item.NormalizeWeight(item.Quantity{Value: 3.5, Unit: "kg"})
		if err != nil || kg != 3.5 {
			t.Errorf("got %v, %v", kg, err)
		}
	})

	t.Run("Pounds Converted", func(t *testing.T) {
		kg, err := item.NormalizeWeight(item.Quantity{Value: 10, Unit: "lbs"})
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(kg-4.5359237) > 1e-9 {
			t.Errorf("got %v kg", kg)
		}
	})

	t.Run("Non Positive Rejected", func(t *testing.T) {
		if _, err := item.NormalizeWeight(item.Quantity{Value: 0, Unit: "kg"}); !errors.Is(err, item.ErrInvalidQuantity) {
			t.Errorf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("Unknown Unit Rejected", func(t *testing.T) {
		if _, err := item.NormalizeWeight(item.Quantity{Value: 1, Unit: "stone"}); !errors.Is(err, item.ErrUnknownUnit) {
			t.Errorf("expected ErrUnknownUnit, got %v", err)
		}
	})
}

func TestNormalizeVolume(t *testing.T) {
	t.Run("Cubic Meters Pass Through", func(t *testing.T) {
		m3, err := item.NormalizeVolume(item.Quantity{Value: 0.5, Unit: "m3"})
		if err != nil || m3 != 0.5 {
			t.Errorf("got %v, %v", m3, err)
		}
	})

	t.Run("Cubic Feet Converted", func(t *testing.T) {
		m3, err := item.NormalizeVolume(item.Quantity{Value: 1, Unit: "ft³"})
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(m3-0.028316846592) > 1e-12 {
			t.Errorf("got %v m³", m3)
		}
	})

	t.Run("Unknown Unit Rejected", func(t *testing.T) {
		if _, err := item.NormalizeVolume(item.Quantity{Value: 1, Unit: "gal"}); !errors.Is(err, item.ErrUnknownUnit) {
			t.Errorf("expected ErrUnknownUnit, got %v", err)
		}
	})
}
