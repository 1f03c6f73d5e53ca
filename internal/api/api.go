// ABOUTME: API server wiring: handler struct, route registration, response shapes
// ABOUTME: Handlers read the caller's Identity from context and scope all access by it

package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/2389/taskdeck/internal/auth"
	"github.com/2389/taskdeck/internal/store"
)

// Server holds the API dependencies.
type Server struct {
	store      store.Store
	issuer     auth.TokenIssuer
	sessionTTL time.Duration
	logger     *slog.Logger
}

// New creates an API server.
func New(st store.Store, issuer auth.TokenIssuer, sessionTTL time.Duration) *Server {
	return &Server{
		store:      st,
		issuer:     issuer,
		sessionTTL: sessionTTL,
		logger:     slog.Default().With("component", "api"),
	}
}

// RegisterRoutes registers all API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Auth
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", s.handleLogout)

	// Projects
	mux.HandleFunc("GET /api/projects", s.handleListProjects)
	mux.HandleFunc("POST /api/projects", s.handleCreateProject)
	mux.HandleFunc("GET /api/projects/{id}", s.handleGetProject)
	mux.HandleFunc("PUT /api/projects/{id}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", s.handleDeleteProject)

	// Tasks
	mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	mux.HandleFunc("GET /api/tasks/{id}", s.handleGetTask)
	mux.HandleFunc("PUT /api/tasks/{id}", s.handleUpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)

	// Health
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.logger.Info("api routes registered")
}

// identity returns the authenticated caller, or writes a 401 and returns nil.
// The gate normally rejects unauthenticated requests before they get here;
// this is the handler-level backstop.
func (s *Server) identity(w http.ResponseWriter, r *http.Request) *auth.Identity {
	id := auth.IdentityFromContext(r.Context())
	if id == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}
	return id
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// userResponse is the JSON shape for account data. It never carries the
// password hash.
type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// projectResponse is the JSON shape for a project.
type projectResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	UserID      int64   `json:"userId"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// projectWithTasks embeds the project's tasks for read endpoints.
type projectWithTasks struct {
	projectResponse
	Tasks []taskResponse `json:"tasks"`
}

// taskResponse is the JSON shape for a task.
type taskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate"`
	ProjectID   int64   `json:"projectId"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func toUserResponse(u *store.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toProjectResponse(p *store.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		UserID:      p.UserID,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toTaskResponse(t *store.Task) taskResponse {
	resp := taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		ProjectID:   t.ProjectID,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if t.DueDate != nil {
		due := t.DueDate.UTC().Format(time.RFC3339)
		resp.DueDate = &due
	}
	return resp
}

func toTaskResponses(tasks []*store.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}
