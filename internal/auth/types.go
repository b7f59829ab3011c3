package auth

import (
	"samaritans-api/internal/model"
	"samaritans-api/pkg/geo"
)

// SignupOrganizationInput carries a new organization registration.
type SignupOrganizationInput struct {
	Username string
	Email    string
	Password string

	Name         string
	Location     geo.Point
	AddressLine1 string
	AddressLine2 string
	City         string
	Province     string
	PostalCode   string
}

// SignupSamaritanInput carries a new donor registration.
type SignupSamaritanInput struct {
	Username string
	Email    string
	Password string

	City     string
	Province string
}

// SignupOutput is the created account identity.
type SignupOutput struct {
	User model.User
}

// LoginInput carries submitted credentials. Username may also be an email.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is the issued session.
type LoginOutput struct {
	Token string
	User  model.User
}
