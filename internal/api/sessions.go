// ABOUTME: Login and logout handlers issuing and clearing session cookies
// ABOUTME: Uses a dummy bcrypt comparison so unknown emails take constant time

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2389/taskdeck/internal/auth"
	"github.com/2389/taskdeck/internal/store"
)

// loginResponse wraps the authenticated account.
type loginResponse struct {
	User userResponse `json:"user"`
}

// handleLogin handles POST /api/auth/login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidInput(w, map[string][]string{"body": {"Malformed JSON"}})
		return
	}

	if details := req.Validate(); details != nil {
		writeInvalidInput(w, details)
		return
	}

	user, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn the same bcrypt work as a real comparison so the
			// response time doesn't reveal whether the email exists
			auth.DummyCompare(req.Password)
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeInternal(w, s.logger, "looking up user", err)
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.issuer.Issue(user.ID, s.sessionTTL)
	if err != nil {
		writeInternal(w, s.logger, "issuing session token", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.sessionTTL),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	s.logger.Info("login successful", "user_id", user.ID)
	writeJSON(w, http.StatusOK, loginResponse{User: toUserResponse(user)})
}

// handleLogout handles POST /api/auth/logout.
// The session token is stateless, so logout just clears the cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	w.WriteHeader(http.StatusNoContent)
}
