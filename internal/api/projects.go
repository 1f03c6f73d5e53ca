// ABOUTME: Project CRUD handlers with owner-scoped access
// ABOUTME: Absent and not-owned are both 404 so project existence never leaks

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2389/taskdeck/internal/store"
)

// projectID parses the {id} path segment.
// Writes a 400 and returns false when it is not a well-formed numeric id.
func projectID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project ID")
		return 0, false
	}
	return id, true
}

// handleListProjects handles GET /api/projects?search=.
// Each project embeds its tasks.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	identity := s.identity(w, r)
	if identity == nil {
		return
	}

	search := r.URL.Query().Get("search")

	projects, err := s.store.ListProjects(r.Context(), identity.UserID, search)
	if err != nil {
		writeInternal(w, s.logger, "listing projects", err)
		return
	}

	// One query for all tasks, grouped by project, instead of one per project
	tasks, err := s.store.ListUserTasks(r.Context(), identity.UserID)
	if err != nil {
		writeInternal(w, s.logger, "listing tasks", err)
		return
	}

	byProject := make(map[int64][]taskResponse)
	for _, t := range tasks {
		byProject[t.ProjectID] = append(byProject[t.ProjectID], toTaskResponse(t))
	}

	response := make([]projectWithTasks, 0, len(projects))
	for _, p := range projects {
		embedded := byProject[p.ID]
		if embedded == nil {
			embedded = []taskResponse{}
		}
		response = append(response, projectWithTasks{
			projectResponse: toProjectResponse(p),
			Tasks:           embedded,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// handleCreateProject handles POST /api/projects.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	identity := s.identity(w, r)
	if identity == nil {
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidInput(w, map[string][]string{"body": {"Malformed JSON"}})
		return
	}
	if details := req.Validate(); details != nil {
		writeInvalidInput(w, details)
		return
	}

	project := &store.Project{
		Title:       req.Title,
		Description: req.Description,
		UserID:      identity.UserID,
	}

	if err := s.store.CreateProject(r.Context(), project); err != nil {
		writeInternal(w, s.logger, "creating project", err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(project))
}

// handleGetProject handles GET /api/projects/{id}.
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	identity := s.identity(w, r)
	if identity == nil {
		return
	}

	id, ok := projectID(w, r)
	if !ok {
		return
	}

	project, err := s.store.GetProject(r.Context(), id, identity.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		writeInternal(w, s.logger, "fetching project", err)
		return
	}

	tasks, err := s.store.ListProjectTasks(r.Context(), project.ID)
	if err != nil {
		writeInternal(w, s.logger, "listing project tasks", err)
		return
	}

	writeJSON(w, http.StatusOK, projectWithTasks{
		projectResponse: toProjectResponse(project),
		Tasks:           toTaskResponses(tasks),
	})
}

// handleUpdateProject handles PUT /api/projects/{id} with full-field
// replace semantics: an omitted description is cleared.
func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	identity := s.identity(w, r)
	if identity == nil {
		return
	}

	id, ok := projectID(w, r)
	if !ok {
		return
	}

	// Resolve ownership before touching the body
	project, err := s.store.GetProject(r.Context(), id, identity.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		writeInternal(w, s.logger, "fetching project", err)
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidInput(w, map[string][]string{"body": {"Malformed JSON"}})
		return
	}
	if details := req.Validate(); details != nil {
		writeInvalidInput(w, details)
		return
	}

	project.Title = req.Title
	project.Description = req.Description

	if err := s.store.UpdateProject(r.Context(), project); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		writeInternal(w, s.logger, "updating project", err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(project))
}

// handleDeleteProject handles DELETE /api/projects/{id}.
// Tasks go with the project via the store's FK cascade.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	identity := s.identity(w, r)
	if identity == nil {
		return
	}

	id, ok := projectID(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteProject(r.Context(), id, identity.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		writeInternal(w, s.logger, "deleting project", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
