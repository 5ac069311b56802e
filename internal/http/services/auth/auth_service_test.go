package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	intauth "github.com/gotnoskillz412/option22/internal/auth"
	"github.com/gotnoskillz412/option22/internal/cache/memory"
	dto "github.com/gotnoskillz412/option22/internal/http/dto/auth"
	jwtx "github.com/gotnoskillz412/option22/internal/jwt"
	"github.com/gotnoskillz412/option22/internal/store/mem"
)

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	issuer, err := jwtx.NewIssuer("service-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	return Deps{
		Store:     mem.New(),
		Issuer:    issuer,
		Blacklist: intauth.NewBlacklist(memory.New(time.Hour, ""), time.Hour),
	}
}

func registerTestAccount(t *testing.T, deps Deps, username, email string) *dto.AuthResponse {
	t.Helper()
	resp, err := NewRegisterService(deps).Register(context.Background(), dto.RegisterRequest{
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     email,
		Password:  "Sup3rSecret",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return resp
}

func TestRegisterIssuesToken(t *testing.T) {
	deps := newTestDeps(t)
	resp := registerTestAccount(t, deps, "alice_01", "Alice@Example.com")

	if resp.Token == "" {
		t.Fatal("expected token in register response")
	}
	if resp.Account.Username != "alice_01" {
		t.Fatalf("username = %q", resp.Account.Username)
	}
	if resp.Account.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", resp.Account.Email)
	}

	ident, err := deps.Issuer.Verify(resp.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ident.Username != "alice_01" || ident.Email != "alice@example.com" {
		t.Fatalf("identity = %+v", ident)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	deps := newTestDeps(t)
	registerTestAccount(t, deps, "alice_01", "alice@example.com")

	svc := NewRegisterService(deps)
	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "bob_0001",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email: got %v, want ErrEmailTaken", err)
	}

	_, err = svc.Register(context.Background(), dto.RegisterRequest{
		Username: "alice_01",
		Email:    "other@example.com",
		Password: "Sup3rSecret",
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate username: got %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewRegisterService(deps)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "alice_01",
		Email:    "alice@example.com",
		Password: "weak",
	})
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak password: got %v", err)
	}

	_, err = svc.Register(context.Background(), dto.RegisterRequest{
		Username: "ab",
		Email:    "short@example.com",
		Password: "Sup3rSecret",
	})
	if !errors.Is(err, ErrBadUsername) {
		t.Fatalf("short username: got %v", err)
	}
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	deps := newTestDeps(t)
	registerTestAccount(t, deps, "alice_01", "alice@example.com")
	svc := NewLoginService(deps)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "Alice_01", Password: "Sup3rSecret"})
	if err != nil {
		t.Fatalf("login by username: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected token")
	}

	resp, err = svc.Login(context.Background(), dto.LoginRequest{Email: "alice@example.com", Password: "Sup3rSecret"})
	if err != nil {
		t.Fatalf("login by email: %v", err)
	}
	if resp.Account.Username != "alice_01" {
		t.Fatalf("account = %+v", resp.Account)
	}
}

func TestLoginUniformFailure(t *testing.T) {
	deps := newTestDeps(t)
	registerTestAccount(t, deps, "alice_01", "alice@example.com")
	svc := NewLoginService(deps)

	// Usuario inexistente y password incorrecto producen el mismo error.
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "nobody99", Password: "Sup3rSecret"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: got %v", err)
	}
	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "alice_01", Password: "WrongPass1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	deps := newTestDeps(t)
	resp := registerTestAccount(t, deps, "alice_01", "alice@example.com")
	svc := NewLogoutService(deps)
	ctx := context.Background()

	if err := svc.Logout(ctx, resp.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	revoked, err := deps.Blacklist.IsRevoked(ctx, resp.Token)
	if err != nil {
		t.Fatalf("IsRevoked: %v", err)
	}
	if !revoked {
		t.Fatal("token not revoked after logout")
	}

	// Segundo logout del mismo token: no-op exitoso.
	if err := svc.Logout(ctx, resp.Token); err != nil {
		t.Fatalf("repeated Logout: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	deps := newTestDeps(t)
	registerTestAccount(t, deps, "alice_01", "alice@example.com")
	ctx := context.Background()

	account, err := deps.Store.Accounts.GetByUsername(ctx, "alice_01")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}

	svc := NewAccountService(deps)
	_, err = svc.ChangePassword(ctx, account, dto.PasswordChangeRequest{
		CurrentPassword: "WrongPass1",
		NewPassword:     "An0therSecret",
	})
	if !errors.Is(err, ErrIncorrectPassword) {
		t.Fatalf("wrong current password: got %v", err)
	}

	resp, err := svc.ChangePassword(ctx, account, dto.PasswordChangeRequest{
		CurrentPassword: "Sup3rSecret",
		NewPassword:     "An0therSecret",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected re-issued token")
	}

	// El password viejo deja de servir, el nuevo entra.
	login := NewLoginService(deps)
	if _, err := login.Login(ctx, dto.LoginRequest{Username: "alice_01", Password: "Sup3rSecret"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password still valid: %v", err)
	}
	if _, err := login.Login(ctx, dto.LoginRequest{Username: "alice_01", Password: "An0therSecret"}); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestUpdateAccountReissuesToken(t *testing.T) {
	deps := newTestDeps(t)
	registerTestAccount(t, deps, "alice_01", "alice@example.com")
	registerTestAccount(t, deps, "bob_0001", "bob@example.com")
	ctx := context.Background()

	account, err := deps.Store.Accounts.GetByUsername(ctx, "alice_01")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}

	svc := NewAccountService(deps)
	if _, err := svc.UpdateAccount(ctx, account, dto.AccountUpdateRequest{Username: "bob_0001"}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("taken username: got %v", err)
	}

	resp, err := svc.UpdateAccount(ctx, account, dto.AccountUpdateRequest{Username: "alice_02", Email: "alice2@example.com"})
	if err != nil {
		t.Fatalf("UpdateAccount: %v", err)
	}
	if resp.Account.Username != "alice_02" || resp.Account.Email != "alice2@example.com" {
		t.Fatalf("account = %+v", resp.Account)
	}

	ident, err := deps.Issuer.Verify(resp.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ident.Username != "alice_02" || ident.Email != "alice2@example.com" {
		t.Fatalf("token identity = %+v", ident)
	}
}
