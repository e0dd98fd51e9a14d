package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tripforge/tripforge/internal/auth"
	"github.com/tripforge/tripforge/internal/store/memory"
)

// plainHasher avoids argon2 work in unit tests.
type plainHasher struct{}

func (plainHasher) Hash(plaintext string) (string, error) {
	return "plain:" + plaintext, nil
}

func (plainHasher) Verify(plaintext, credential string) (bool, error) {
	return credential == "plain:"+plaintext, nil
}

func newAuthService(t *testing.T, adminEmails ...string) *AuthService {
	t.Helper()
	stores := memory.New()
	tokens := auth.NewTokenCodec("test-secret", time.Hour)
	return NewAuthService(stores.Users, plainHasher{}, tokens, adminEmails, nil)
}

func TestRegisterIssuesToken(t *testing.T) {
	svc := newAuthService(t)

	result, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "hunter22hunter",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a token")
	}
	if result.User.Email != "ada@example.com" {
		t.Errorf("email not lowercased: %q", result.User.Email)
	}
	if result.User.IsAdmin {
		t.Error("unexpected admin flag")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	input := RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "hunter22hunter"}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	// Same address with different case is still a duplicate.
	input.Email = "ADA@example.com"
	if _, err := svc.Register(ctx, input); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterAdminAllowlist(t *testing.T) {
	svc := newAuthService(t, "Root@Example.com")

	result, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "hunter22hunter",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !result.User.IsAdmin {
		t.Error("allowlisted email should be admin")
	}
}

func TestLoginRoundTrip(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "hunter22hunter"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	result, err := svc.Login(ctx, "ada@example.com", "hunter22hunter")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.User.ID != reg.User.ID {
		t.Errorf("logged in as %q, registered as %q", result.User.ID, reg.User.ID)
	}
	if result.Token == "" {
		t.Error("expected a token")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "hunter22hunter"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, wrongPass := svc.Login(ctx, "ada@example.com", "wrong")
	_, unknownUser := svc.Login(ctx, "nobody@example.com", "whatever")

	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownUser, ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
}
