package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vin-dashboard/internal/api/handler"
	"vin-dashboard/internal/catalog"
	"vin-dashboard/internal/middleware"
	"vin-dashboard/internal/querylog"
)

func newTestRouter(t *testing.T) (http.Handler, *middleware.Sessions) {
	t.Helper()
	sessions := middleware.NewSessions(time.Hour)
	dir := t.TempDir()
	h := &handler.Handler{
		Catalog:  catalog.NewService(dir),
		Queries:  querylog.NewService(dir),
		Sessions: sessions,
		Secret:   "hunter2",
	}
	return NewRouter(h), sessions
}

func TestRouterHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouterRequiresSession(t *testing.T) {
	router, sessions := newTestRouter(t)

	paths := []string{
		"/api/v1/catalog/search?vin=V1",
		"/api/v1/queries/organizations",
		"/api/v1/history",
	}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s without a token: expected status 401, got %d", path, rec.Code)
		}
	}

	// With a valid token the request reaches the handler. The empty fixture
	// directory makes the catalog load fail, which is a 500, not a 401.
	token := sessions.Issue()
	req := httptest.NewRequest("GET", "/api/v1/catalog/search?vin=V1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code == http.StatusUnauthorized {
		t.Error("valid token should pass the session check")
	}
}
