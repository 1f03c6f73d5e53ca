// ABOUTME: HTTP handlers for the HTML pages
// ABOUTME: Renders embedded templates; the auth gate decides who sees what

package web

import (
	"html/template"
	"log/slog"
	"net/http"
)

// Pages serves the HTML side of the app. Route protection lives in the auth
// gate, not here: by the time a request reaches these handlers the gate has
// already redirected anonymous visitors away from /dashboard and signed-in
// ones away from /login and /register.
type Pages struct {
	logger *slog.Logger
}

func NewPages() *Pages {
	return &Pages{
		logger: slog.Default().With("component", "web"),
	}
}

// RegisterRoutes attaches the page handlers to the mux.
func (p *Pages) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", p.handleIndex)
	mux.HandleFunc("GET /login", p.handleLogin)
	mux.HandleFunc("GET /register", p.handleRegister)
	mux.HandleFunc("GET /dashboard", p.handleDashboard)
	mux.HandleFunc("GET /403", p.handleForbidden)
}

type pageData struct {
	Title string
}

func (p *Pages) render(w http.ResponseWriter, status int, name, title string) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/"+name))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.Execute(w, pageData{Title: title}); err != nil {
		p.logger.Error("failed to render page", "template", name, "error", err)
	}
}

func (p *Pages) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (p *Pages) handleLogin(w http.ResponseWriter, r *http.Request) {
	p.render(w, http.StatusOK, "login.html", "Log in")
}

func (p *Pages) handleRegister(w http.ResponseWriter, r *http.Request) {
	p.render(w, http.StatusOK, "register.html", "Create account")
}

func (p *Pages) handleDashboard(w http.ResponseWriter, r *http.Request) {
	p.render(w, http.StatusOK, "dashboard.html", "Dashboard")
}

func (p *Pages) handleForbidden(w http.ResponseWriter, r *http.Request) {
	p.render(w, http.StatusForbidden, "forbidden.html", "Access denied")
}
