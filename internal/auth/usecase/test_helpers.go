package usecase

import (
	"context"

	repo "samaritans-api/internal/auth/repository"
	"samaritans-api/internal/model"
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

// Mock user repository with overridable behavior per test
type mockRepo struct {
	createOrganizationFn func(ctx context.Context, opt repo.CreateOrganizationOptions) (model.Organization, error)
	createSamaritanFn    func(ctx context.Context, opt repo.CreateSamaritanOptions) (model.Samaritan, error)
	getOneUserFn         func(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error)
	getOrganizationFn    func(ctx context.Context, opt repo.GetOneUserOptions) (model.Organization, error)
	getSamaritanFn       func(ctx context.Context, opt repo.GetOneUserOptions) (model.Samaritan, error)
}

func (m *mockRepo) CreateOrganization(ctx context.Context, opt repo.CreateOrganizationOptions) (model.Organization, error) {
	if m.createOrganizationFn != nil {
		return m.createOrganizationFn(ctx, opt)
	}
	org := model.Organization{Name: opt.Name, Location: opt.Location}
	org.ID = "org-1"
	org.Username = opt.Username
	org.Email = opt.Email
	org.PasswordHash = opt.PasswordHash
	org.UserType = model.UserTypeOrganization
	return org, nil
}

func (m *mockRepo) CreateSamaritan(ctx context.Context, opt repo.CreateSamaritanOptions) (model.Samaritan, error) {
	if m.createSamaritanFn != nil {
		return m.createSamaritanFn(ctx, opt)
	}
	sam := model.Samaritan{City: opt.City, Province: opt.Province}
	sam.ID = "sam-1"
	sam.Username = opt.Username
	sam.Email = opt.Email
	sam.PasswordHash = opt.PasswordHash
	sam.UserType = model.UserTypeSamaritan
	return sam, nil
}

func (m *mockRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	if m.getOneUserFn != nil {
		return m.getOneUserFn(ctx, opt)
	}
	return model.User{}, nil
}

func (m *mockRepo) GetOrganization(ctx context.Context, opt repo.GetOneUserOptions) (model.Organization, error) {
	if m.getOrganizationFn != nil {
		return m.getOrganizationFn(ctx, opt)
	}
	return model.Organization{}, nil
}

func (m *mockRepo) GetSamaritan(ctx context.Context, opt repo.GetOneUserOptions) (model.Samaritan, error) {
	if m.getSamaritanFn != nil {
		return m.getSamaritanFn(ctx, opt)
	}
	return model.Samaritan{}, nil
}
