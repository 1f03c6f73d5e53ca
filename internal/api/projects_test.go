// ABOUTME: Tests for project CRUD handlers
// ABOUTME: Covers round-trips, owner scoping as 404, search, and gate redirects

package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/taskdeck/internal/auth"
)

func TestProjects_Unauthenticated_RedirectsToForbidden(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, auth.ForbiddenPath, rec.Header().Get("Location"))
}

func TestCreateAndGetProject_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser("a@b.com")

	rec := env.request(http.MethodPost, "/api/projects", token, map[string]any{
		"title":       "Website redesign",
		"description": "Q3 refresh",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeJSON(t, rec)
	id := int64(created["id"].(float64))
	require.NotZero(t, id)

	rec = env.request(http.MethodGet, fmt.Sprintf("/api/projects/%d", id), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeJSON(t, rec)
	assert.Equal(t, "Website redesign", got["title"])
	assert.Equal(t, "Q3 refresh", got["description"])
	assert.Equal(t, []any{}, got["tasks"])
}

func TestCreateProject_OmittedDescriptionIsNull(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser("a@b.com")

	rec := env.request(http.MethodPost, "/api/projects", token, map[string]any{
		"title": "Bare",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	id := int64(decodeJSON(t, rec)["id"].(float64))

	rec = env.request(http.MethodGet, fmt.Sprintf("/api/projects/%d", id), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeJSON(t, rec)["description"])
}

func TestCreateProject_MissingTitle(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser("a@b.com")

	rec := env.request(http.MethodPost, "/api/projects", token, map[string]any{
		"description": "no title",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	details := decodeJSON(t, rec)["details"].(map[string]any)
	assert.Contains(t, details, "title")
}

func TestGetProject_InvalidID(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser("a@b.com")

	rec := env.request(http.MethodGet, "/api/projects/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProject_NotOwned_Reads404(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.createUser("owner@example.com")
	_, otherToken := env.createUser("other@example.com")

	projectID := env.createProject(ownerID, "Private")

	// Someone else's project is indistinguishable from a missing one
	rec := env.request(http.MethodGet, fmt.Sprintf("/api/projects/%d", projectID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found", decodeJSON(t, rec)["error"])
}

func TestUpdateProject_NotOwned_Reads404(t *testing.T) {
	env := newTestEnv(t)
	ownerID, ownerToken := env.createUser("owner@example.com")
	_, otherToken := env.createUser("other@example.com")

	projectID := env.createProject(ownerID, "Private")

	rec := env.request(http.MethodPut, fmt.Sprintf("/api/projects/%d", projectID), otherToken, map[string]any{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Unchanged for the owner
	rec = env.request(http.MethodGet, fmt.Sprintf("/api/projects/%d", projectID), ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Private", decodeJSON(t, rec)["title"])
}

func TestUpdateProject_FullReplace(t *testing.T) {
	env := newTestEnv(t)
	userID, token := env.createUser("a@b.com")
	projectID := env.createProject(userID, "Before")

	// Omitting description clears it
	rec := env.request(http.MethodPut, fmt.Sprintf("/api/projects/%d", projectID), token, map[string]any{
		"title": "After",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeJSON(t, rec)
	assert.Equal(t, "After", got["title"])
	assert.Nil(t, got["description"])
}

func TestDeleteProject_Twice(t *testing.T) {
	env := newTestEnv(t)
	userID, token := env.createUser("a@b.com")
	projectID := env.createProject(userID, "Doomed")

	rec := env.request(http.MethodDelete, fmt.Sprintf("/api/projects/%d", projectID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeJSON(t, rec)["success"])

	rec = env.request(http.MethodDelete, fmt.Sprintf("/api/projects/%d", projectID), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProjects_SearchAndEmbeddedTasks(t *testing.T) {
	env := newTestEnv(t)
	userID, token := env.createUser("a@b.com")

	alphaID := env.createProject(userID, "Alpha launch")
	env.createProject(userID, "Beta cleanup")

	rec := env.request(http.MethodPost, "/api/tasks", token, map[string]any{
		"title":     "Prepare announcement",
		"projectId": alphaID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.request(http.MethodGet, "/api/projects?search=launch", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	projects := decodeJSONArray(t, rec)
	require.Len(t, projects, 1)
	assert.Equal(t, "Alpha launch", projects[0]["title"])

	tasks := projects[0]["tasks"].([]any)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Prepare announcement", tasks[0].(map[string]any)["title"])
}

func TestListProjects_OnlyCallersProjects(t *testing.T) {
	env := newTestEnv(t)
	ownerID, ownerToken := env.createUser("owner@example.com")
	otherID, _ := env.createUser("other@example.com")

	env.createProject(ownerID, "Mine")
	env.createProject(otherID, "Theirs")

	rec := env.request(http.MethodGet, "/api/projects", ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	projects := decodeJSONArray(t, rec)
	require.Len(t, projects, 1)
	assert.Equal(t, "Mine", projects[0]["title"])
}

func TestProjects_HandlerBackstop401(t *testing.T) {
	// Bypassing the gate, handlers still refuse anonymous callers
	env := newTestEnv(t)

	mux := http.NewServeMux()
	env.server.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
