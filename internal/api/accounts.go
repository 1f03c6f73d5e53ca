// ABOUTME: Registration handler creating accounts with hashed passwords
// ABOUTME: Duplicate emails map to 409; responses never include the password

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2389/taskdeck/internal/auth"
	"github.com/2389/taskdeck/internal/store"
)

// registerResponse wraps the created account.
type registerResponse struct {
	User userResponse `json:"user"`
}

// handleRegister handles POST /api/auth/register.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidInput(w, map[string][]string{"body": {"Malformed JSON"}})
		return
	}

	if details := req.Validate(); details != nil {
		writeInvalidInput(w, details)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeInternal(w, s.logger, "hashing password", err)
		return
	}

	user := &store.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			writeError(w, http.StatusConflict, "User already exists")
			return
		}
		writeInternal(w, s.logger, "creating user", err)
		return
	}

	s.logger.Info("user registered", "id", user.ID, "email", user.Email)
	writeJSON(w, http.StatusCreated, registerResponse{User: toUserResponse(user)})
}
