// ABOUTME: Task CRUD handlers with ownership resolved through the parent project
// ABOUTME: Missing tasks are 404; existing tasks under someone else's project are 403

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2389/taskdeck/internal/auth"
	"github.com/2389/taskdeck/internal/store"
)

// taskID parses the {id} path segment.
func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task ID")
		return 0, false
	}
	return id, true
}

// resolveTask fetches a task and enforces transitive ownership: 404 when the
// task does not exist, 403 when it exists but the parent project belongs to
// someone else. Returns nil after writing the response in either case.
func (s *Server) resolveTask(w http.ResponseWriter, r *http.Request, id int64, identity *auth.Identity) *store.Task {
	task, ownerID, err := s.store.GetTask(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return nil
		}
		writeInternal(w, s.logger, "fetching task", err)
		return nil
	}

	if ownerID != identity.UserID {
		writeError(w, http.StatusForbidden, "Forbidden")
		return nil
	}

	return task
}

// handleListTasks handles GET /api/tasks?projectId=.
// With projectId it lists that project's tasks (404 if the project isn't
// the caller's); without it, tasks across all of the caller's projects.
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	identity := s.identity(w, r)
	if identity == nil {
		return
	}

	projectIDParam := r.URL.Query().Get("projectId")

	var tasks []*store.Task
	if projectIDParam != "" {
		projectID, err := strconv.ParseInt(projectIDParam, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid project ID")
			return
		}

		if _, err := s.store.GetProject(r.Context(), projectID, identity.UserID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Project not found")
				return
			}
			writeInternal(w, s.logger, "fetching project", err)
			return
		}

		tasks, err = s.store.ListProjectTasks(r.Context(), projectID)
		if err != nil {
			writeInternal(w, s.logger, "listing project tasks", err)
			return
		}
	} else {
		var err error
		tasks, err = s.store.ListUserTasks(r.Context(), identity.UserID)
		if err != nil {
			writeInternal(w, s.logger, "listing tasks", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, toTaskResponses(tasks))
}

// handleCreateTask handles POST /api/tasks.
// The parent project must exist and belong to the caller; a foreign project
// reads as 404, matching the project lookup contract.
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	identity := s.identity(w, r)
	if identity == nil {
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidInput(w, map[string][]string{"body": {"Malformed JSON"}})
		return
	}
	if details := req.Validate(); details != nil {
		writeInvalidInput(w, details)
		return
	}

	if _, err := s.store.GetProject(r.Context(), req.ProjectID, identity.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found or unauthorized")
			return
		}
		writeInternal(w, s.logger, "fetching project", err)
		return
	}

	task := &store.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.dueTime,
		ProjectID:   req.ProjectID,
	}

	if err := s.store.CreateTask(r.Context(), task); err != nil {
		writeInternal(w, s.logger, "creating task", err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(task))
}

// handleGetTask handles GET /api/tasks/{id}.
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	identity := s.identity(w, r)
	if identity == nil {
		return
	}

	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task := s.resolveTask(w, r, id, identity)
	if task == nil {
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

// handleUpdateTask handles PUT /api/tasks/{id} with full-field replace
// semantics. The task stays in its project; the body's projectId is
// validated but not honored.
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	identity := s.identity(w, r)
	if identity == nil {
		return
	}

	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task := s.resolveTask(w, r, id, identity)
	if task == nil {
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidInput(w, map[string][]string{"body": {"Malformed JSON"}})
		return
	}
	// Updates keep the task in place, so the body doesn't need a projectId
	req.ProjectID = task.ProjectID
	if details := req.Validate(); details != nil {
		writeInvalidInput(w, details)
		return
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Status = req.Status
	task.DueDate = req.dueTime

	if err := s.store.UpdateTask(r.Context(), task); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		writeInternal(w, s.logger, "updating task", err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

// handleDeleteTask handles DELETE /api/tasks/{id}.
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	identity := s.identity(w, r)
	if identity == nil {
		return
	}

	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task := s.resolveTask(w, r, id, identity)
	if task == nil {
		return
	}

	if err := s.store.DeleteTask(r.Context(), task.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		writeInternal(w, s.logger, "deleting task", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
