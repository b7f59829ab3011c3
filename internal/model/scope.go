package model

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// UserType is the actor role carried in the session.
type UserType string

const (
	UserTypeSamaritan    UserType = "samaritan"
	UserTypeOrganization UserType = "organization"
)

// Scope is the request identity, built by the auth middleware from the
// session cookie and passed explicitly into use cases.
type Scope struct {
	UserID   string
	Username string
	Email    string
	UserType UserType
}

// IsOrganization reports whether the scope belongs to an organization.
func (s Scope) IsOrganization() bool { return s.UserType == UserTypeOrganization }

// IsSamaritan reports whether the scope belongs to a samaritan.
func (s Scope) IsSamaritan() bool { return s.UserType == UserTypeSamaritan }
