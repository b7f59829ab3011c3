package auth

import "context"

// UseCase defines the business logic interface for accounts and sessions.
type UseCase interface {
	// SignupOrganization registers a recipient organization account.
	SignupOrganization(ctx context.Context, input SignupOrganizationInput) (SignupOutput, error)

	// SignupSamaritan registers a donor account.
	SignupSamaritan(ctx context.Context, input SignupSamaritanInput) (SignupOutput, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
}
