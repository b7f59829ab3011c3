package usecase

import (
	"context"
	"errors"

	"samaritans-api/internal/item"
	repo "samaritans-api/internal/item/repository"
	"samaritans-api/internal/model"
)

// Reserve transitions Offered → Reserved. The store's conditional update is
// the arbiter: of two racing organizations exactly one wins, the other gets
// ErrInvalidStateTransition.
func (uc *implUseCase) Reserve(ctx context.Context, sc model.Scope, itemID string) (item.LifecycleOutput, error) {
	if !sc.IsOrganization() {
		return item.LifecycleOutput{}, item.ErrOrganizationOnly
	}

	updated, err := uc.repo.Reserve(ctx, repo.ReserveOptions{
		ItemID:       itemID,
		ReservedBy:   sc.UserID,
		ReservedTill: uc.now().Add(uc.cfg.ReservationTTL),
	})
	if err != nil {
		return item.LifecycleOutput{}, uc.explainTransitionFailure(ctx, "Reserve", itemID, sc, err)
	}

	uc.views.Invalidate()
	return item.LifecycleOutput{Item: updated}, nil
}

// Unreserve transitions Reserved → Offered, clearing all reservation
// metadata. Only the holding organization may release.
func (uc *implUseCase) Unreserve(ctx context.Context, sc model.Scope, itemID string) (item.LifecycleOutput, error) {
	if !sc.IsOrganization() {
		return item.LifecycleOutput{}, item.ErrOrganizationOnly
	}

	updated, err := uc.repo.Unreserve(ctx, repo.UnreserveOptions{
		ItemID:     itemID,
		ReservedBy: sc.UserID,
	})
	if err != nil {
		return item.LifecycleOutput{}, uc.explainTransitionFailure(ctx, "Unreserve", itemID, sc, err)
	}

	uc.views.Invalidate()
	return item.LifecycleOutput{Item: updated}, nil
}

// Pickup transitions Reserved → PickedUp; the state is terminal. Only the
// holding organization may confirm.
func (uc *implUseCase) Pickup(ctx context.Context, sc model.Scope, itemID string) (item.LifecycleOutput, error) {
	if !sc.IsOrganization() {
		return item.LifecycleOutput{}, item.ErrOrganizationOnly
	}

	updated, err := uc.repo.Pickup(ctx, repo.PickupOptions{
		ItemID:     itemID,
		PickedUpBy: sc.UserID,
		PickupTime: uc.now(),
	})
	if err != nil {
		return item.LifecycleOutput{}, uc.explainTransitionFailure(ctx, "Pickup", itemID, sc, err)
	}

	uc.views.Invalidate()
	return item.LifecycleOutput{Item: updated}, nil
}

// explainTransitionFailure turns the store's flat "nothing matched the guard"
// answer into the precise domain error. The re-read happens after the failed
// update, so a lost race reports the winner's state, never a stale one.
func (uc *implUseCase) explainTransitionFailure(ctx context.Context, op, itemID string, sc model.Scope, err error) error {
	if !errors.Is(err, repo.ErrNoTransition) {
		uc.l.Errorf(ctx, "uc.%s: %v", op, err)
		return err
	}

	it, getErr := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: itemID})
	if getErr != nil {
		uc.l.Errorf(ctx, "uc.%s GetOneItem: %v", op, getErr)
		return getErr
	}
	if it.ID == "" {
		return item.ErrItemNotFound
	}

	// Reserved by another organization is an authorization failure for the
	// holder-only transitions, and a plain state conflict for Reserve.
	if op != "Reserve" && it.IsReserved && !it.IsPickedUp && it.ReservedBy != sc.UserID {
		return item.ErrNotReservingOrg
	}
	return item.ErrInvalidStateTransition
}
