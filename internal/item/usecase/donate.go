package usecase

import (
	"context"
	"strings"
	"time"

	"samaritans-api/internal/item"
	repo "samaritans-api/internal/item/repository"
	"samaritans-api/internal/model"
)

// Donate creates a new listing in the Offered state.
func (uc *implUseCase) Donate(ctx context.Context, sc model.Scope, input item.DonateInput) (item.DonateOutput, error) {
	if !sc.IsSamaritan() {
		return item.DonateOutput{}, item.ErrSamaritanOnly
	}

	if !model.ValidCategory(input.Category) {
		return item.DonateOutput{}, item.ErrInvalidCategory
	}
	if strings.TrimSpace(input.Description) == "" {
		return item.DonateOutput{}, item.ErrMissingDescription
	}
	if err := input.PickupLocation.Validate(); err != nil {
		return item.DonateOutput{}, err
	}

	weightKg, err := normalizeOptional(input.Weight, item.NormalizeWeight)
	if err != nil {
		return item.DonateOutput{}, err
	}
	volumeM3, err := normalizeOptional(input.Volume, item.NormalizeVolume)
	if err != nil {
		return item.DonateOutput{}, err
	}

	var bestBefore *time.Time
	if input.BestBefore != "" {
		d, err := time.Parse(time.DateOnly, input.BestBefore)
		if err != nil {
			return item.DonateOutput{}, item.ErrInvalidBestBefore
		}
		if d.Before(uc.now().Truncate(24 * time.Hour)) {
			return item.DonateOutput{}, item.ErrBestBeforeInPast
		}
		bestBefore = &d
	}

	availableTill := uc.now().Add(uc.cfg.OfferTTL)
	if input.AvailableTill != nil {
		availableTill = *input.AvailableTill
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Category:          input.Category,
		Description:       strings.TrimSpace(input.Description),
		WeightKg:          weightKg,
		VolumeM3:          volumeM3,
		BestBefore:        bestBefore,
		PickupLocation:    input.PickupLocation,
		PickupWindowStart: input.PickupWindowStart,
		PickupWindowEnd:   input.PickupWindowEnd,
		ImageURL:          input.ImageURL,
		PostedBy:          sc.UserID,
		AvailableTill:     availableTill,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Donate CreateItem: %v", err)
		return item.DonateOutput{}, err
	}

	uc.views.Invalidate()
	return item.DonateOutput{Item: created}, nil
}

func normalizeOptional(q *item.Quantity, normalize func(item.Quantity) (float64, error)) (*float64, error) {
	if q == nil {
		return nil, nil
	}
	v, err := normalize(*q)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
