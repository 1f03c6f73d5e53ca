// ABOUTME: Authorization gate middleware classifying request paths
// ABOUTME: Redirects unauthenticated protected requests and logged-in auth-entry requests

package auth

import (
	"log/slog"
	"net/http"
	"strings"
)

// SessionCookieName is the name of the session token cookie.
const SessionCookieName = "taskdeck_session"

// Redirect targets used by the gate.
const (
	ForbiddenPath = "/403"
	DashboardPath = "/dashboard"
)

// protectedPrefixes are path prefixes that require a valid session.
var protectedPrefixes = []string{"/dashboard", "/api/projects", "/api/tasks"}

// authEntryRoutes are routes that redirect to the dashboard when already
// logged in, preventing re-authentication.
var authEntryRoutes = map[string]bool{
	"/login":    true,
	"/register": true,
}

// Gate intercepts every inbound request and decides one of three outcomes:
// reject (redirect to the forbidden page), bounce (redirect an already
// authenticated user away from login/register), or pass through.
type Gate struct {
	issuer TokenIssuer
	logger *slog.Logger
}

// NewGate creates an authorization gate backed by the given token issuer.
func NewGate(issuer TokenIssuer) *Gate {
	return &Gate{
		issuer: issuer,
		logger: slog.Default().With("component", "gate"),
	}
}

// IsProtected reports whether the path requires authentication.
func IsProtected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// IsAuthEntry reports whether the path is a login/register entry route.
func IsAuthEntry(path string) bool {
	return authEntryRoutes[path]
}

// Middleware wraps a handler with the gate's path classification.
// A validated token attaches an Identity to the request context regardless
// of the path class, so downstream handlers see the caller when present.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := g.identityFromRequest(r)

		switch {
		case IsProtected(r.URL.Path) && identity == nil:
			http.Redirect(w, r, ForbiddenPath, http.StatusSeeOther)
			return

		case IsAuthEntry(r.URL.Path) && identity != nil:
			http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
			return
		}

		if identity != nil {
			r = r.WithContext(WithIdentity(r.Context(), identity))
		}
		next.ServeHTTP(w, r)
	})
}

// identityFromRequest extracts and verifies a session token from the cookie
// or the Authorization header. Any verification failure fails closed: the
// request is treated as unauthenticated and the failure is logged, never
// raised to the caller.
func (g *Gate) identityFromRequest(r *http.Request) *Identity {
	token := sessionToken(r)
	if token == "" {
		return nil
	}

	userID, err := g.issuer.Verify(token)
	if err != nil {
		g.logger.Debug("session token rejected", "path", r.URL.Path, "error", err)
		return nil
	}

	return &Identity{UserID: userID}
}

// sessionToken returns the raw token from the session cookie, falling back
// to an Authorization bearer header for API clients.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}
