package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"saldogo-server/src/api"
	"saldogo-server/src/db/memory"
)

const testKey = "router-test-key"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(api.NewRouter(memory.NewStore(), testKey, []string{"*"}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenRoutes(t *testing.T) {
	srv := newServer(t)
	for _, path := range []string{"/", "/api/health", "/api/profile"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestDataRoutesRequireKey(t *testing.T) {
	srv := newServer(t)
	paths := []string{
		"/api/transactions",
		"/api/accounts",
		"/api/categories",
		"/api/budgets",
		"/api/dashboard",
		"/api/reports/by-category",
		"/api/reports/by-month",
	}
	for _, path := range paths {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("GET %s without key = %d, want 401", path, resp.StatusCode)
		}
	}
}

func TestUnknownFieldsRejected(t *testing.T) {
	srv := newServer(t)
	body := `{"name":"Wallet","bogus_field":true}`
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/accounts", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer "+testKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown field = %d, want 400", resp.StatusCode)
	}
}
