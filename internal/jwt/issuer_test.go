package jwt

import (
	"strings"
	"testing"
	"time"
)

func TestNewIssuer_RequiresSecret(t *testing.T) {
	if _, err := NewIssuer("", time.Hour); err != ErrNoSecret {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	iss, err := NewIssuer("unit-test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	token, exp, err := iss.Issue("alice99", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue err: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if remaining := time.Until(exp); remaining < 59*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}

	ident, err := iss.Verify(token)
	if err != nil {
		t.Fatalf("Verify err: %v", err)
	}
	if ident.Username != "alice99" || ident.Email != "alice@example.com" {
		t.Fatalf("identity mismatch: %+v", ident)
	}
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	iss, err := NewIssuer("unit-test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	iss.now = func() time.Time { return t0 }

	token, _, err := iss.Issue("alice99", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}

	// Un segundo antes del expiry todavía autentica.
	iss.now = func() time.Time { return t0.Add(time.Hour - time.Second) }
	if _, err := iss.Verify(token); err != nil {
		t.Fatalf("token should still be valid at t0+3599: %v", err)
	}

	// Un segundo después ya no.
	iss.now = func() time.Time { return t0.Add(time.Hour + time.Second) }
	if _, err := iss.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken at t0+3601, got %v", err)
	}
}

func TestVerify_RejectsTampering(t *testing.T) {
	iss, _ := NewIssuer("unit-test-secret", time.Hour)
	token, _, err := iss.Issue("alice99", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}

	// Payload corrupto con la firma original.
	tampered := parts[0] + "." + parts[1][:len(parts[1])-2] + "xx" + "." + parts[2]
	if _, err := iss.Verify(tampered); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered payload, got %v", err)
	}

	// Firma de otro secret.
	other, _ := NewIssuer("a-different-secret", time.Hour)
	foreign, _, err := other.Issue("alice99", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := iss.Verify(foreign); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}

	if _, err := iss.Verify("not-a-jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}
