package usecase

import (
	"context"
	"errors"
	"testing"

	"samaritans-api/internal/item"
	repo "samaritans-api/internal/item/repository"
	"samaritans-api/internal/model"
)

func TestReserveErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Samaritans Cannot Reserve", func(t *testing.T) {
		_, err := newTestUseCase(&mockItemRepo{}, nil).Reserve(ctx, samScope("sam-1"), "item-1")
		if !errors.Is(err, item.ErrOrganizationOnly) {
			t.Errorf("expected ErrOrganizationOnly, got %v", err)
		}
	})

	t.Run("Unknown Item", func(t *testing.T) {
		m := &mockItemRepo{} // Reserve fails, GetOneItem returns zero value
		_, err := newTestUseCase(m, nil).Reserve(ctx, orgScope("org-1"), "missing")
		if !errors.Is(err, item.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("Already Reserved Is A State Conflict", func(t *testing.T) {
		m := &mockItemRepo{
			getOneItemFn: func(_ context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
				return model.Item{ID: opt.ID, IsReserved: true, ReservedBy: "org-2"}, nil
			},
		}
		_, err := newTestUseCase(m, nil).Reserve(ctx, orgScope("org-1"), "item-1")
		if !errors.Is(err, item.ErrInvalidStateTransition) {
			t.Errorf("expected ErrInvalidStateTransition, got %v", err)
		}
	})

	t.Run("Store Error Passes Through", func(t *testing.T) {
		boom := errors.New("boom")
		m := &mockItemRepo{
			reserveFn: func(context.Context, repo.ReserveOptions) (model.Item, error) {
				return model.Item{}, boom
			},
		}
		_, err := newTestUseCase(m, nil).Reserve(ctx, orgScope("org-1"), "item-1")
		if !errors.Is(err, boom) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}

func TestUnreserveErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Held By Another Organization", func(t *testing.T) {
		m := &mockItemRepo{
			getOneItemFn: func(_ context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
				return model.Item{ID: opt.ID, IsReserved: true, ReservedBy: "org-2"}, nil
			},
		}
		_, err := newTestUseCase(m, nil).Unreserve(ctx, orgScope("org-1"), "item-1")
		if !errors.Is(err, item.ErrNotReservingOrg) {
			t.Errorf("expected ErrNotReservingOrg, got %v", err)
		}
	})

	t.Run("Not Reserved", func(t *testing.T) {
		m := &mockItemRepo{
			getOneItemFn: func(_ context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
				return model.Item{ID: opt.ID}, nil
			},
		}
		_, err := newTestUseCase(m, nil).Unreserve(ctx, orgScope("org-1"), "item-1")
		if !errors.Is(err, item.ErrInvalidStateTransition) {
			t.Errorf("expected ErrInvalidStateTransition, got %v", err)
		}
	})
}

func TestPickupErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Held By Another Organization", func(t *testing.T) {
		m := &mockItemRepo{
			getOneItemFn: func(_ context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
				return model.Item{ID: opt.ID, IsReserved: true, ReservedBy: "org-2"}, nil
			},
		}
		_, err := newTestUseCase(m, nil).Pickup(ctx, orgScope("org-1"), "item-1")
		if !errors.Is(err, item.ErrNotReservingOrg) {
			t.Errorf("expected ErrNotReservingOrg, got %v", err)
		}
	})

	t.Run("Already Picked Up", func(t *testing.T) {
		m := &mockItemRepo{
			getOneItemFn: func(_ context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
				return model.Item{
					ID: opt.ID, IsReserved: true, ReservedBy: "org-1",
					IsPickedUp: true, PickedUpBy: "org-1",
				}, nil
			},
		}
		_, err := newTestUseCase(m, nil).Pickup(ctx, orgScope("org-1"), "item-1")
		if !errors.Is(err, item.ErrInvalidStateTransition) {
			t.Errorf("expected ErrInvalidStateTransition, got %v", err)
		}
	})
}
