package usecase

import (
	"context"
	"time"

	authRepo "samaritans-api/internal/auth/repository"
	repo "samaritans-api/internal/item/repository"
	"samaritans-api/internal/model"
	"samaritans-api/pkg/geo"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}

// Mock item repository with overridable behavior per test
type mockItemRepo struct {
	createItemFn        func(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error)
	getOneItemFn        func(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error)
	listOfferedFn       func(ctx context.Context, opt repo.ListOfferedOptions) ([]model.Item, error)
	listHistoryFn       func(ctx context.Context, opt repo.ListHistoryOptions) ([]model.Item, int, error)
	reserveFn           func(ctx context.Context, opt repo.ReserveOptions) (model.Item, error)
	unreserveFn         func(ctx context.Context, opt repo.UnreserveOptions) (model.Item, error)
	pickupFn            func(ctx context.Context, opt repo.PickupOptions) (model.Item, error)
	deactivateExpiredFn func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockItemRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	if m.createItemFn != nil {
		return m.createItemFn(ctx, opt)
	}
	return model.Item{
		ID:             "item-1",
		Category:       opt.Category,
		Description:    opt.Description,
		WeightKg:       opt.WeightKg,
		VolumeM3:       opt.VolumeM3,
		BestBefore:     opt.BestBefore,
		PickupLocation: opt.PickupLocation,
		PostedBy:       opt.PostedBy,
		AvailableTill:  opt.AvailableTill,
		IsActive:       true,
	}, nil
}

func (m *mockItemRepo) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	if m.getOneItemFn != nil {
		return m.getOneItemFn(ctx, opt)
	}
	return model.Item{}, nil
}

func (m *mockItemRepo) ListOffered(ctx context.Context, opt repo.ListOfferedOptions) ([]model.Item, error) {
	if m.listOfferedFn != nil {
		return m.listOfferedFn(ctx, opt)
	}
	return nil, nil
}

func (m *mockItemRepo) ListHistory(ctx context.Context, opt repo.ListHistoryOptions) ([]model.Item, int, error) {
	if m.listHistoryFn != nil {
		return m.listHistoryFn(ctx, opt)
	}
	return nil, 0, nil
}

func (m *mockItemRepo) Reserve(ctx context.Context, opt repo.ReserveOptions) (model.Item, error) {
	if m.reserveFn != nil {
		return m.reserveFn(ctx, opt)
	}
	return model.Item{}, repo.ErrNoTransition
}

func (m *mockItemRepo) Unreserve(ctx context.Context, opt repo.UnreserveOptions) (model.Item, error) {
	if m.unreserveFn != nil {
		return m.unreserveFn(ctx, opt)
	}
	return model.Item{}, repo.ErrNoTransition
}

func (m *mockItemRepo) Pickup(ctx context.Context, opt repo.PickupOptions) (model.Item, error) {
	if m.pickupFn != nil {
		return m.pickupFn(ctx, opt)
	}
	return model.Item{}, repo.ErrNoTransition
}

func (m *mockItemRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.deactivateExpiredFn != nil {
		return m.deactivateExpiredFn(ctx, now)
	}
	return 0, nil
}

// Mock user repository serving a single organization anchored in Windsor
type mockUserRepo struct {
	getOrganizationFn func(ctx context.Context, opt authRepo.GetOneUserOptions) (model.Organization, error)
}

func (m *mockUserRepo) CreateOrganization(ctx context.Context, opt authRepo.CreateOrganizationOptions) (model.Organization, error) {
	return model.Organization{}, nil
}

func (m *mockUserRepo) CreateSamaritan(ctx context.Context, opt authRepo.CreateSamaritanOptions) (model.Samaritan, error) {
	return model.Samaritan{}, nil
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt authRepo.GetOneUserOptions) (model.User, error) {
	return model.User{}, nil
}

func (m *mockUserRepo) GetOrganization(ctx context.Context, opt authRepo.GetOneUserOptions) (model.Organization, error) {
	if m.getOrganizationFn != nil {
		return m.getOrganizationFn(ctx, opt)
	}
	org := model.Organization{Location: geo.Point{Lat: 42.3173, Lon: -82.5039}}
	org.ID = opt.ID
	org.UserType = model.UserTypeOrganization
	return org, nil
}

func (m *mockUserRepo) GetSamaritan(ctx context.Context, opt authRepo.GetOneUserOptions) (model.Samaritan, error) {
	return model.Samaritan{}, nil
}

func orgScope(id string) model.Scope {
	return model.Scope{UserID: id, UserType: model.UserTypeOrganization}
}

func samScope(id string) model.Scope {
	return model.Scope{UserID: id, UserType: model.UserTypeSamaritan}
}
