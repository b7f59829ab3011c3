package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"samaritans-api/internal/auth"
	repo "samaritans-api/internal/auth/repository"
)

const minPasswordLen = 8

// SignupOrganization registers a recipient organization account.
func (uc *implUseCase) SignupOrganization(ctx context.Context, input auth.SignupOrganizationInput) (auth.SignupOutput, error) {
	if err := validateCredentials(input.Username, input.Email, input.Password); err != nil {
		return auth.SignupOutput{}, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return auth.SignupOutput{}, auth.ErrMissingName
	}
	if !auth.ValidProvince(input.Province) {
		return auth.SignupOutput{}, auth.ErrInvalidProvince
	}
	if !auth.ValidPostalCode(input.PostalCode) {
		return auth.SignupOutput{}, auth.ErrInvalidPostalCode
	}
	if err := input.Location.Validate(); err != nil {
		return auth.SignupOutput{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignupOrganization bcrypt: %v", err)
		return auth.SignupOutput{}, err
	}

	org, err := uc.repo.CreateOrganization(ctx, repo.CreateOrganizationOptions{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Location:     input.Location,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		Province:     strings.ToUpper(input.Province),
		PostalCode:   strings.ToUpper(input.PostalCode),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return auth.SignupOutput{}, auth.ErrUsernameOrEmailTaken
		}
		uc.l.Errorf(ctx, "uc.SignupOrganization CreateOrganization: %v", err)
		return auth.SignupOutput{}, err
	}

	return auth.SignupOutput{User: org.User}, nil
}

// SignupSamaritan registers a donor account.
func (uc *implUseCase) SignupSamaritan(ctx context.Context, input auth.SignupSamaritanInput) (auth.SignupOutput, error) {
	if err := validateCredentials(input.Username, input.Email, input.Password); err != nil {
		return auth.SignupOutput{}, err
	}
	if input.Province != "" && !auth.ValidProvince(input.Province) {
		return auth.SignupOutput{}, auth.ErrInvalidProvince
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignupSamaritan bcrypt: %v", err)
		return auth.SignupOutput{}, err
	}

	sam, err := uc.repo.CreateSamaritan(ctx, repo.CreateSamaritanOptions{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		City:         input.City,
		Province:     strings.ToUpper(input.Province),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return auth.SignupOutput{}, auth.ErrUsernameOrEmailTaken
		}
		uc.l.Errorf(ctx, "uc.SignupSamaritan CreateSamaritan: %v", err)
		return auth.SignupOutput{}, err
	}

	return auth.SignupOutput{User: sam.User}, nil
}

func validateCredentials(username, email, password string) error {
	if strings.TrimSpace(username) == "" {
		return auth.ErrMissingUsername
	}
	if !auth.ValidEmail(email) {
		return auth.ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return auth.ErrPasswordTooShort
	}
	return nil
}
