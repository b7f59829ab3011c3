package repository

import (
	"context"

	"samaritans-api/internal/model"
)

// Repository is the composed interface for the auth domain data store.
type Repository interface {
	UserRepository
}

// UserRepository provides access to user accounts of both roles.
type UserRepository interface {
	// CreateOrganization inserts a new organization account and returns it.
	CreateOrganization(ctx context.Context, opt CreateOrganizationOptions) (model.Organization, error)

	// CreateSamaritan inserts a new samaritan account and returns it.
	CreateSamaritan(ctx context.Context, opt CreateSamaritanOptions) (model.Samaritan, error)

	// GetOneUser retrieves a user by ID, username, or email.
	// Returns zero-value User (ID == "") when not found — do NOT return error for not-found.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)

	// GetOrganization retrieves the full organization record for a user ID.
	// Returns zero-value Organization (ID == "") when not found.
	GetOrganization(ctx context.Context, opt GetOneUserOptions) (model.Organization, error)

	// GetSamaritan retrieves the full samaritan record for a user ID.
	// Returns zero-value Samaritan (ID == "") when not found.
	GetSamaritan(ctx context.Context, opt GetOneUserOptions) (model.Samaritan, error)
}
