// ABOUTME: Tests for app assembly and lifecycle
// ABOUTME: Covers end-to-end wiring through the handler chain and graceful shutdown

package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/2389/taskdeck/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Server.HTTPAddr = "127.0.0.1:0"
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.Auth.JWTSecret = "server-lifecycle-test-secret-32b"
	return cfg
}

func TestNew_ShortSecretFails(t *testing.T) {
	cfg := testConfig(t)
	cfg.Auth.JWTSecret = "short"

	if _, err := New(cfg, slog.Default()); err == nil {
		t.Fatal("expected error for short JWT secret")
	}
}

func TestApp_EndToEnd(t *testing.T) {
	app, err := New(testConfig(t), slog.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer app.Shutdown(context.Background())

	handler := app.Handler()

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	// Health check bypasses auth
	if rec := do(http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rec.Code)
	}

	// Anonymous dashboard access redirects to the forbidden page
	rec := do(http.MethodGet, "/dashboard", "")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("dashboard status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/403" {
		t.Errorf("Location = %q, want /403", loc)
	}

	// Registration reaches the API through the full chain
	rec = do(http.MethodPost, "/api/auth/register", `{"name":"Al","email":"a@b.com","password":"shortpw1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}

	// Login pages render
	if rec := do(http.MethodGet, "/login", ""); rec.Code != http.StatusOK {
		t.Errorf("login page status = %d", rec.Code)
	}
}

func TestApp_RunAndShutdown(t *testing.T) {
	app, err := New(testConfig(t), slog.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	// Give the listener a moment, then cancel to trigger shutdown
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
