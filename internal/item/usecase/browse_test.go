package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	authRepo "samaritans-api/internal/auth/repository"
	"samaritans-api/internal/item"
	repo "samaritans-api/internal/item/repository"
	"samaritans-api/internal/model"
	"samaritans-api/pkg/geo"
)

// Fixture points around the Windsor, ON anchor (42.3173, -82.5039).
var (
	anchorPoint = geo.Point{Lat: 42.3173, Lon: -82.5039}
	nearPoint   = geo.Point{Lat: 42.3180, Lon: -82.5050} // well under 1 km
	midPoint    = geo.Point{Lat: 42.3204, Lon: -82.5561} // about 4.3 km
	farPoint    = geo.Point{Lat: 43.0000, Lon: -82.5039} // about 76 km
)

func offeredItem(id string, loc geo.Point) model.Item {
	return model.Item{
		ID:             id,
		Category:       1,
		Description:    "Canned soup",
		PickupLocation: loc,
		PostedBy:       "sam-1",
		IsActive:       true,
	}
}

func TestBrowse(t *testing.T) {
	ctx := context.Background()

	t.Run("Samaritans Cannot Browse", func(t *testing.T) {
		_, err := newTestUseCase(&mockItemRepo{}, nil).Browse(ctx, samScope("sam-1"), item.BrowseInput{})
		if !errors.Is(err, item.ErrOrganizationOnly) {
			t.Errorf("expected ErrOrganizationOnly, got %v", err)
		}
	})

	t.Run("Negative Radius Rejected", func(t *testing.T) {
		_, err := newTestUseCase(&mockItemRepo{}, nil).Browse(ctx, orgScope("org-1"), item.BrowseInput{RadiusKm: -1})
		if !errors.Is(err, item.ErrInvalidRadius) {
			t.Errorf("expected ErrInvalidRadius, got %v", err)
		}
	})

	t.Run("Default Radius Excludes Far Items", func(t *testing.T) {
		m := &mockItemRepo{
			listOfferedFn: func(context.Context, repo.ListOfferedOptions) ([]model.Item, error) {
				return []model.Item{
					offeredItem("far", farPoint),
					offeredItem("mid", midPoint),
					offeredItem("near", nearPoint),
				}, nil
			},
		}

		out, err := newTestUseCase(m, nil).Browse(ctx, orgScope("org-1"), item.BrowseInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TotalItems != 2 {
			t.Fatalf("expected 2 items inside default radius, got %d", out.TotalItems)
		}
		if out.Items[0].Item.ID != "near" || out.Items[1].Item.ID != "mid" {
			t.Errorf("expected closest-first order, got %s then %s", out.Items[0].Item.ID, out.Items[1].Item.ID)
		}
		if out.Items[1].DistanceKm < 4.3 || out.Items[1].DistanceKm > 4.7 {
			t.Errorf("distance annotation off: %f", out.Items[1].DistanceKm)
		}
	})

	t.Run("Pagination", func(t *testing.T) {
		items := make([]model.Item, 0, 7)
		for i := 0; i < 7; i++ {
			items = append(items, offeredItem(fmt.Sprintf("item-%d", i), nearPoint))
		}
		m := &mockItemRepo{
			listOfferedFn: func(context.Context, repo.ListOfferedOptions) ([]model.Item, error) {
				return items, nil
			},
		}
		uc := newTestUseCase(m, nil)

		t.Run("Second Page", func(t *testing.T) {
			out, err := uc.Browse(ctx, orgScope("org-1"), item.BrowseInput{Page: 2, PerPage: 3})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Page != 2 || out.TotalPages != 3 || len(out.Items) != 3 {
				t.Errorf("wrong page shape: page=%d totalPages=%d len=%d", out.Page, out.TotalPages, len(out.Items))
			}
		})

		t.Run("Past The End Clamps To Last Page", func(t *testing.T) {
			out, err := uc.Browse(ctx, orgScope("org-1"), item.BrowseInput{Page: 99, PerPage: 3})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Page != 3 || len(out.Items) != 1 {
				t.Errorf("expected clamped last page with 1 item, got page=%d len=%d", out.Page, len(out.Items))
			}
		})

		t.Run("Negative Page Rejected", func(t *testing.T) {
			_, err := uc.Browse(ctx, orgScope("org-1"), item.BrowseInput{Page: -1})
			if err == nil {
				t.Error("expected an error for a negative page")
			}
		})
	})

	t.Run("Search Applies To Current Page Only", func(t *testing.T) {
		soupNear := offeredItem("soup-near", nearPoint)
		coatsNear := offeredItem("coats-near", nearPoint)
		coatsNear.Description = "Winter coats"
		soupMid := offeredItem("soup-mid", midPoint)

		m := &mockItemRepo{
			listOfferedFn: func(context.Context, repo.ListOfferedOptions) ([]model.Item, error) {
				return []model.Item{soupNear, coatsNear, soupMid}, nil
			},
		}

		out, err := newTestUseCase(m, nil).Browse(ctx, orgScope("org-1"), item.BrowseInput{
			Page: 1, PerPage: 2, SearchText: "SOUP",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// page 1 holds the two nearest; only one of them mentions soup, and the
		// matching item on page 2 stays out of page 1
		if len(out.Items) != 1 || out.Items[0].Item.ID != "soup-near" {
			t.Errorf("expected page-local match only, got %+v", out.Items)
		}
		if out.TotalItems != 3 || out.TotalPages != 2 {
			t.Errorf("page-local filter must not change totals: %d items, %d pages", out.TotalItems, out.TotalPages)
		}
	})

	t.Run("Organization Record Missing", func(t *testing.T) {
		u := &mockUserRepo{
			getOrganizationFn: func(context.Context, authRepo.GetOneUserOptions) (model.Organization, error) {
				return model.Organization{}, nil
			},
		}
		_, err := newTestUseCase(&mockItemRepo{}, u).Browse(ctx, orgScope("org-1"), item.BrowseInput{})
		if !errors.Is(err, item.ErrNoLocation) {
			t.Errorf("expected ErrNoLocation, got %v", err)
		}
	})
}

func TestBrowseCaching(t *testing.T) {
	ctx := context.Background()
	calls := 0
	m := &mockItemRepo{
		listOfferedFn: func(context.Context, repo.ListOfferedOptions) ([]model.Item, error) {
			calls++
			return []model.Item{offeredItem("item-1", nearPoint)}, nil
		},
		reserveFn: func(_ context.Context, opt repo.ReserveOptions) (model.Item, error) {
			it := offeredItem(opt.ItemID, nearPoint)
			it.IsReserved = true
			it.ReservedBy = opt.ReservedBy
			return it, nil
		},
	}
	uc := newTestUseCase(m, nil)
	in := item.BrowseInput{Page: 1}

	if _, err := uc.Browse(ctx, orgScope("org-1"), in); err != nil {
		t.Fatalf("first browse: %v", err)
	}
	if _, err := uc.Browse(ctx, orgScope("org-1"), in); err != nil {
		t.Fatalf("second browse: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected second browse served from cache, repo called %d times", calls)
	}

	// any successful mutation must refresh the read views
	if _, err := uc.Reserve(ctx, orgScope("org-1"), "item-1"); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if _, err := uc.Browse(ctx, orgScope("org-1"), in); err != nil {
		t.Fatalf("third browse: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected browse after mutation to re-read the store, repo called %d times", calls)
	}
}
