package service

import (
	"context"
	"testing"
	"time"

	"github.com/magazine-platform/internal/auth"
	"github.com/magazine-platform/internal/models"
	"github.com/magazine-platform/internal/overlay"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (*authService, *overlay.Store) {
	t.Helper()

	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}

	os := overlay.NewStore(overlay.NewMemoryKV(), zerolog.Nop())
	svc := newAuthService(os, auth.NewPasswordHasherWithCost(bcrypt.MinCost), tokens, zerolog.Nop()).(*authService)

	base := time.UnixMilli(1718200000000)
	calls := 0
	svc.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}
	return svc, os
}

func TestRegisterAndLogin(t *testing.T) {
	svc, os := newTestAuthService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, &models.RegisterInput{
		Email:    "Editor@Example.com",
		Password: "secret1",
		Name:     "Editor",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if token == "" {
		t.Error("Register should log the user straight in")
	}
	if user.Email != "editor@example.com" {
		t.Errorf("email not lowercased: %q", user.Email)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", user.Role)
	}

	// The stored hash is keyed by user id and is never the plaintext.
	if hash := os.Passwords()[user.ID]; hash == "" || hash == "secret1" {
		t.Errorf("stored password = %q, want a bcrypt hash", hash)
	}

	loggedIn, token, err := svc.Login(ctx, &models.LoginInput{Email: "editor@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token == "" || loggedIn.ID != user.ID {
		t.Errorf("Login = (%+v, %q)", loggedIn, token)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, &models.RegisterInput{Email: "editor@example.com", Password: "secret1", Name: "Editor"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Duplicate detection is case-insensitive.
	if _, _, err := svc.Register(ctx, &models.RegisterInput{Email: "EDITOR@example.com", Password: "other1", Name: "Imposter"}); err != ErrEmailTaken {
		t.Errorf("duplicate Register = %v, want ErrEmailTaken", err)
	}
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, &models.RegisterInput{Email: "editor@example.com", Password: "secret1", Name: "Editor"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Unknown email and wrong password fail identically.
	if _, _, err := svc.Login(ctx, &models.LoginInput{Email: "ghost@example.com", Password: "secret1"}); err != ErrInvalidCredentials {
		t.Errorf("Login unknown email = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(ctx, &models.LoginInput{Email: "editor@example.com", Password: "wrong"}); err != ErrInvalidCredentials {
		t.Errorf("Login wrong password = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginCaseInsensitiveEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, &models.RegisterInput{Email: "editor@example.com", Password: "secret1", Name: "Editor"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, _, err := svc.Login(ctx, &models.LoginInput{Email: "Editor@Example.COM", Password: "secret1"}); err != nil {
		t.Errorf("Login with different email casing failed: %v", err)
	}
}

func TestGetUser(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, &models.RegisterInput{Email: "editor@example.com", Password: "secret1", Name: "Editor"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, err := svc.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Email != "editor@example.com" {
		t.Errorf("GetUser = %+v", got)
	}

	if _, err := svc.GetUser(ctx, "missing"); err != ErrNotFound {
		t.Errorf("GetUser missing = %v, want ErrNotFound", err)
	}
}
