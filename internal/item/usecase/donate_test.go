package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"samaritans-api/internal/item"
	repo "samaritans-api/internal/item/repository"
	"samaritans-api/internal/model"
	"samaritans-api/pkg/geo"
)

func newTestUseCase(r repo.Repository, u *mockUserRepo) *implUseCase {
	if u == nil {
		u = &mockUserRepo{}
	}
	return New(r, u, Config{}, &mockLogger{})
}

func validDonateInput() item.DonateInput {
	return item.DonateInput{
		Category:       1,
		Description:    "Canned soup, 24 tins",
		PickupLocation: geo.Point{Lat: 42.3204, Lon: -82.5561},
	}
}

func TestDonate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success With Unit Conversion", func(t *testing.T) {
		var captured repo.CreateItemOptions
		m := &mockItemRepo{
			createItemFn: func(_ context.Context, opt repo.CreateItemOptions) (model.Item, error) {
				captured = opt
				return model.Item{ID: "item-1", IsActive: true}, nil
			},
		}
		uc := newTestUseCase(m, nil)

		in := validDonateInput()
		in.Weight = &item.Quantity{Value: 10, Unit: "lb"}
		in.Volume = &item.Quantity{Value: 2, Unit: "ft3"}

		out, err := uc.Donate(ctx, samScope("sam-1"), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.ID != "item-1" {
			t.Errorf("expected created item, got %+v", out.Item)
		}
		if captured.WeightKg == nil || math.Abs(*captured.WeightKg-4.5359237) > 1e-9 {
			t.Errorf("weight not converted to kg: %v", captured.WeightKg)
		}
		if captured.VolumeM3 == nil || math.Abs(*captured.VolumeM3-0.056633693184) > 1e-12 {
			t.Errorf("volume not converted to m³: %v", captured.VolumeM3)
		}
		if captured.PostedBy != "sam-1" {
			t.Errorf("expected donor id, got %q", captured.PostedBy)
		}
		if captured.AvailableTill.IsZero() {
			t.Error("expected a default offer deadline")
		}
	})

	t.Run("Organizations Cannot Donate", func(t *testing.T) {
		_, err := newTestUseCase(&mockItemRepo{}, nil).Donate(ctx, orgScope("org-1"), validDonateInput())
		if !errors.Is(err, item.ErrSamaritanOnly) {
			t.Errorf("expected ErrSamaritanOnly, got %v", err)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*item.DonateInput)
			wantErr error
		}{
			{"Unknown Category", func(in *item.DonateInput) { in.Category = 42 }, item.ErrInvalidCategory},
			{"Category Zero", func(in *item.DonateInput) { in.Category = model.CategoryAll }, item.ErrInvalidCategory},
			{"Blank Description", func(in *item.DonateInput) { in.Description = "   " }, item.ErrMissingDescription},
			{"Bad Date", func(in *item.DonateInput) { in.BestBefore = "01-10-2026" }, item.ErrInvalidBestBefore},
			{"Past Date", func(in *item.DonateInput) { in.BestBefore = "2020-01-01" }, item.ErrBestBeforeInPast},
			{"Zero Weight", func(in *item.DonateInput) { in.Weight = &item.Quantity{Value: 0, Unit: "kg"} }, item.ErrInvalidQuantity},
			{"Bad Unit", func(in *item.DonateInput) { in.Weight = &item.Quantity{Value: 1, Unit: "stone"} }, item.ErrUnknownUnit},
			{"Bad Longitude", func(in *item.DonateInput) { in.PickupLocation.Lon = -200 }, geo.ErrLongitudeOutOfRange},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := validDonateInput()
				tc.mutate(&in)
				_, err := newTestUseCase(&mockItemRepo{}, nil).Donate(ctx, samScope("sam-1"), in)
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})

	t.Run("Explicit Deadline Wins", func(t *testing.T) {
		var captured repo.CreateItemOptions
		m := &mockItemRepo{
			createItemFn: func(_ context.Context, opt repo.CreateItemOptions) (model.Item, error) {
				captured = opt
				return model.Item{ID: "item-1"}, nil
			},
		}
		till := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
		in := validDonateInput()
		in.AvailableTill = &till

		if _, err := newTestUseCase(m, nil).Donate(ctx, samScope("sam-1"), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !captured.AvailableTill.Equal(till) {
			t.Errorf("expected explicit deadline, got %v", captured.AvailableTill)
		}
	})
}
