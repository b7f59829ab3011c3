package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"samaritans-api/internal/auth"
	repo "samaritans-api/internal/auth/repository"
	"samaritans-api/internal/model"
)

// Login verifies credentials and issues a session token. A missing user and a
// wrong password both map to ErrInvalidCredentials so the response does not
// reveal which accounts exist.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	opt := repo.GetOneUserOptions{Username: input.Username}
	if strings.Contains(input.Username, "@") {
		opt = repo.GetOneUserOptions{Email: input.Username}
	}

	user, err := uc.repo.GetOneUser(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return auth.LoginOutput{}, err
	}
	if user.ID == "" {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.session.Generate(model.Scope{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		UserType: user.UserType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login Generate: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{Token: token, User: user}, nil
}
