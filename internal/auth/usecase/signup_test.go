package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"samaritans-api/internal/auth"
	repo "samaritans-api/internal/auth/repository"
	"samaritans-api/internal/model"
	"samaritans-api/pkg/geo"
	"samaritans-api/pkg/scope"
)

func newTestUseCase(r repo.Repository) *implUseCase {
	return New(r, scope.NewManager("test-secret"), &mockLogger{})
}

func validOrgInput() auth.SignupOrganizationInput {
	return auth.SignupOrganizationInput{
		Username:   "food-bank",
		Email:      "contact@foodbank.org",
		Password:   "correct horse",
		Name:       "Windsor Food Bank",
		Location:   geo.Point{Lat: 42.3173, Lon: -82.5039},
		City:       "Windsor",
		Province:   "on",
		PostalCode: "N9B 3P4",
	}
}

func TestSignupOrganization(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var captured repo.CreateOrganizationOptions
		m := &mockRepo{
			createOrganizationFn: func(_ context.Context, opt repo.CreateOrganizationOptions) (model.Organization, error) {
				captured = opt
				org := model.Organization{Name: opt.Name}
				org.ID = "org-1"
				org.UserType = model.UserTypeOrganization
				return org, nil
			},
		}

		out, err := newTestUseCase(m).SignupOrganization(ctx, validOrgInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.ID != "org-1" {
			t.Errorf("expected created user, got %+v", out.User)
		}
		if captured.Province != "ON" || captured.PostalCode != "N9B 3P4" {
			t.Errorf("expected normalized province/postal, got %q / %q", captured.Province, captured.PostalCode)
		}
		if captured.PasswordHash == "correct horse" || captured.PasswordHash == "" {
			t.Error("password must be stored hashed")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(captured.PasswordHash), []byte("correct horse")); err != nil {
			t.Errorf("stored hash does not verify: %v", err)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*auth.SignupOrganizationInput)
			wantErr error
		}{
			{"Blank Username", func(in *auth.SignupOrganizationInput) { in.Username = "  " }, auth.ErrMissingUsername},
			{"Bad Email", func(in *auth.SignupOrganizationInput) { in.Email = "not-an-email" }, auth.ErrInvalidEmail},
			{"Short Password", func(in *auth.SignupOrganizationInput) { in.Password = "short" }, auth.ErrPasswordTooShort},
			{"Missing Name", func(in *auth.SignupOrganizationInput) { in.Name = "" }, auth.ErrMissingName},
			{"Bad Province", func(in *auth.SignupOrganizationInput) { in.Province = "XX" }, auth.ErrInvalidProvince},
			{"Bad Postal Code", func(in *auth.SignupOrganizationInput) { in.PostalCode = "12345" }, auth.ErrInvalidPostalCode},
			{"Latitude Out Of Range", func(in *auth.SignupOrganizationInput) { in.Location.Lat = 91 }, geo.ErrLatitudeOutOfRange},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := validOrgInput()
				tc.mutate(&in)
				_, err := newTestUseCase(&mockRepo{}).SignupOrganization(ctx, in)
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})

	t.Run("Duplicate Account", func(t *testing.T) {
		m := &mockRepo{
			createOrganizationFn: func(context.Context, repo.CreateOrganizationOptions) (model.Organization, error) {
				return model.Organization{}, repo.ErrDuplicate
			},
		}
		_, err := newTestUseCase(m).SignupOrganization(ctx, validOrgInput())
		if !errors.Is(err, auth.ErrUsernameOrEmailTaken) {
			t.Errorf("expected ErrUsernameOrEmailTaken, got %v", err)
		}
	})
}

func TestSignupSamaritan(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		out, err := newTestUseCase(&mockRepo{}).SignupSamaritan(ctx, auth.SignupSamaritanInput{
			Username: "donor",
			Email:    "donor@example.com",
			Password: "a long password",
			City:     "Windsor",
			Province: "ON",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.UserType != model.UserTypeSamaritan {
			t.Errorf("expected samaritan account, got %s", out.User.UserType)
		}
	})

	t.Run("Province Is Optional", func(t *testing.T) {
		_, err := newTestUseCase(&mockRepo{}).SignupSamaritan(ctx, auth.SignupSamaritanInput{
			Username: "donor",
			Email:    "donor@example.com",
			Password: "a long password",
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
