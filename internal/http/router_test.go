package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	intauth "github.com/gotnoskillz412/option22/internal/auth"
	"github.com/gotnoskillz412/option22/internal/cache/memory"
	jwtx "github.com/gotnoskillz412/option22/internal/jwt"
	"github.com/gotnoskillz412/option22/internal/store/mem"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	issuer, err := jwtx.NewIssuer("router-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}

	router := NewRouter(RouterDeps{
		Store:     mem.New(),
		Issuer:    issuer,
		Blacklist: intauth.NewBlacklist(memory.New(time.Hour, ""), time.Hour),
	})

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func registerUser(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/auth/register", "", map[string]string{
		"firstName": "End",
		"lastName":  "ToEnd",
		"username":  "endtoend",
		"email":     "e2e@example.com",
		"password":  "Sup3rSecret",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, body = %v", resp.StatusCode, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("register returned no token: %v", body)
	}
	return token
}

func TestLoginLogoutLifecycle(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts)

	// Login y acceso a un recurso protegido con el token fresco.
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/auth/login", "", map[string]string{
		"username": "endtoend",
		"password": "Sup3rSecret",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("login status = %d, body = %v", resp.StatusCode, body)
	}
	token := body["token"].(string)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/auth/account", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("account status = %d, body = %v", resp.StatusCode, body)
	}

	// Logout y el mismo token queda rechazado con el mensaje de revocado.
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/auth/logout", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout status = %d", resp.StatusCode)
	}

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/auth/account", token, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("post-logout status = %d, want 401", resp.StatusCode)
	}
	if got := body["message"]; got != "Old token provided" {
		t.Fatalf("post-logout message = %v", got)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/auth/account", "/auth/logout", "/profiles/me", "/goals"} {
		resp, body := doJSON(t, http.MethodGet, ts.URL+path, "", nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s status = %d, want 401", path, resp.StatusCode)
		}
		if got := body["message"]; got != "Unauthorized: No token provided" {
			t.Fatalf("%s message = %v", path, got)
		}
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/auth/login", "", map[string]string{
		"username": "endtoend",
		"password": "WrongPass1",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("login status = %d, want 401", resp.StatusCode)
	}
	if got := body["message"]; got != "Incorrect username or password" {
		t.Fatalf("login message = %v", got)
	}
}

func TestLogoutRedirect(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts)

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/auth/logout?redirect_uri=https://example.com/bye", token, nil)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("logout status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "https://example.com/bye" {
		t.Fatalf("redirect location = %q", loc)
	}
}

func TestGoalsEndToEnd(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/goals", token, map[string]any{
		"name":     "ship the backend",
		"category": "work",
		"subgoals": []map[string]any{{"name": "write tests"}},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create goal status = %d, body = %v", resp.StatusCode, body)
	}
	goalID := body["id"].(string)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/goals", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list goals status = %d", resp.StatusCode)
	}
	if total := body["total"].(float64); total != 1 {
		t.Fatalf("total = %v", total)
	}

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/goals/"+goalID, token, nil)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("delete goal status = %d, want 202", resp.StatusCode)
	}

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/goals/"+goalID, token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted goal status = %d, body = %v", resp.StatusCode, body)
	}
}
