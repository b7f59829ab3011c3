package scope_test

import (
	"testing"

	"samaritans-api/internal/model"
	"samaritans-api/pkg/scope"
)

func TestManagerRoundTrip(t *testing.T) {
	m := scope.NewManager("test-secret")

	sc := model.Scope{
		UserID:   "u-1",
		Username: "foodbank",
		Email:    "contact@foodbank.org",
		UserType: model.UserTypeOrganization,
	}

	token, err := m.Generate(sc)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	got, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != sc {
		t.Errorf("scope mismatch: got %+v, want %+v", got, sc)
	}
}

func TestManagerRejectsWrongSecret(t *testing.T) {
	token, err := scope.NewManager("secret-a").Generate(model.Scope{Username: "x"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := scope.NewManager("secret-b").Verify(token); err == nil {
		t.Error("expected verification to fail with the wrong secret")
	}
}

func TestManagerRejectsGarbage(t *testing.T) {
	if _, err := scope.NewManager("s").Verify("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
