// ABOUTME: Shared test fixtures for API handler tests
// ABOUTME: Builds a real SQLite store, JWT issuer, and gate-wrapped mux

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/2389/taskdeck/internal/auth"
	"github.com/2389/taskdeck/internal/store"
)

// apiTestSecret is a 32-byte secret that meets MinSecretLength requirement.
var apiTestSecret = []byte("api-handler-test-secret-32-bytes")

type testEnv struct {
	t       *testing.T
	server  *Server
	issuer  *auth.JWTIssuer
	store   *store.SQLiteStore
	handler http.Handler
}

// newTestEnv builds the full request path: gate middleware in front of the
// API mux, backed by a real SQLite store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	issuer, err := auth.NewJWTIssuer(apiTestSecret)
	require.NoError(t, err)

	server := New(st, issuer, time.Hour)
	mux := http.NewServeMux()
	server.RegisterRoutes(mux)

	return &testEnv{
		t:       t,
		server:  server,
		issuer:  issuer,
		store:   st,
		handler: auth.NewGate(issuer).Middleware(mux),
	}
}

// createUser inserts a user directly and returns its ID with a session token.
func (e *testEnv) createUser(email string) (int64, string) {
	e.t.Helper()

	hash, err := auth.HashPassword("shortpw1")
	require.NoError(e.t, err)

	user := &store.User{Name: "Test User", Email: email, PasswordHash: hash}
	require.NoError(e.t, e.store.CreateUser(e.t.Context(), user))

	token, err := e.issuer.Issue(user.ID, time.Hour)
	require.NoError(e.t, err)

	return user.ID, token
}

// createProject inserts a project for the user and returns its ID.
func (e *testEnv) createProject(userID int64, title string) int64 {
	e.t.Helper()

	project := &store.Project{Title: title, UserID: userID}
	require.NoError(e.t, e.store.CreateProject(e.t.Context(), project))
	return project.ID
}

// request performs a JSON request through the gate-wrapped handler.
// An empty token sends no session cookie.
func (e *testEnv) request(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// decodeJSON unmarshals the response body into a generic map.
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// decodeJSONArray unmarshals the response body into a slice of maps.
func decodeJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
