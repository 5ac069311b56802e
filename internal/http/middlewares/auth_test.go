package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gotnoskillz412/option22/internal/auth"
	"github.com/gotnoskillz412/option22/internal/cache"
	"github.com/gotnoskillz412/option22/internal/cache/memory"
	jwtx "github.com/gotnoskillz412/option22/internal/jwt"
)

func newGate(t *testing.T) (*jwtx.Issuer, *auth.Blacklist, http.Handler) {
	t.Helper()
	issuer, err := jwtx.NewIssuer("gate-test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	blacklist := auth.NewBlacklist(memory.New(time.Minute, ""), time.Minute)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := GetIdentity(r.Context())
		if !ok {
			t.Error("identity missing from context after RequireAuth")
		}
		if GetToken(r.Context()) == "" {
			t.Error("raw token missing from context after RequireAuth")
		}
		_ = json.NewEncoder(w).Encode(ident)
	})
	return issuer, blacklist, RequireAuth(issuer, blacklist)(next)
}

func doAuth(h http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/auth/account", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%q)", err, rec.Body.String())
	}
	return body.Message
}

func TestRequireAuth_MalformedHeaders(t *testing.T) {
	_, _, gate := newGate(t)

	// Todas las formas malformadas colapsan en el mismo 401, nunca 500.
	cases := []struct {
		name   string
		header string
	}{
		{"empty", ""},
		{"scheme only", "Bearer"},
		{"wrong scheme", "Basic abc"},
		{"extra segment", "Bearer a b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doAuth(gate, tc.header)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			if got := messageOf(t, rec); got != "Unauthorized: No token provided" {
				t.Fatalf("message = %q", got)
			}
		})
	}
}

func TestRequireAuth_SchemeIsCaseInsensitive(t *testing.T) {
	issuer, _, gate := newGate(t)
	token, _, err := issuer.Issue("alice99", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}

	for _, scheme := range []string{"Bearer", "bearer", "BEARER"} {
		rec := doAuth(gate, scheme+" "+token)
		if rec.Code != http.StatusOK {
			t.Fatalf("scheme %q: status = %d, want 200", scheme, rec.Code)
		}
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	_, _, gate := newGate(t)

	rec := doAuth(gate, "Bearer not.a.token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := messageOf(t, rec); got != "Failed to authenticate the token" {
		t.Fatalf("message = %q", got)
	}
}

func TestRequireAuth_RevokedToken(t *testing.T) {
	issuer, blacklist, gate := newGate(t)
	token, _, err := issuer.Issue("alice99", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}

	if rec := doAuth(gate, "Bearer "+token); rec.Code != http.StatusOK {
		t.Fatalf("pre-revocation status = %d, want 200", rec.Code)
	}

	if err := blacklist.Revoke(context.Background(), token); err != nil {
		t.Fatal(err)
	}

	// Revocado gana sobre la firma válida, en cada consulta posterior.
	for i := 0; i < 3; i++ {
		rec := doAuth(gate, "Bearer "+token)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("post-revocation status = %d, want 401", rec.Code)
		}
		if got := messageOf(t, rec); got != "Old token provided" {
			t.Fatalf("message = %q", got)
		}
	}
}

func TestRequireAuth_RevocationDoesNotAffectOtherTokens(t *testing.T) {
	issuer, blacklist, gate := newGate(t)
	tok1, _, err := issuer.Issue("alice99", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	tok2, _, err := issuer.Issue("bob42", "bob@example.com")
	if err != nil {
		t.Fatal(err)
	}

	if err := blacklist.Revoke(context.Background(), tok1); err != nil {
		t.Fatal(err)
	}

	if rec := doAuth(gate, "Bearer "+tok2); rec.Code != http.StatusOK {
		t.Fatalf("tok2 status = %d, want 200", rec.Code)
	}
}

// failingCache simula un blacklist caído: todo lookup falla.
type failingCache struct{ cache.Client }

func (f failingCache) Exists(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func TestRequireAuth_BlacklistFailureIs500(t *testing.T) {
	issuer, err := jwtx.NewIssuer("gate-test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	blacklist := auth.NewBlacklist(failingCache{memory.New(time.Minute, "")}, time.Minute)
	gate := RequireAuth(issuer, blacklist)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run when the blacklist is unavailable")
	}))

	token, _, err := issuer.Issue("alice99", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}

	rec := doAuth(gate, "Bearer "+token)
	// Fallar "open" anularía el propósito del blacklist.
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := messageOf(t, rec); got != "Error checking old token" {
		t.Fatalf("message = %q", got)
	}
}
