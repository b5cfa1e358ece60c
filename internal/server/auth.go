package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mkale/jobshield/internal/types"
)

// handleToken exchanges a valid access key for a bearer token. The access
// key is verified against the bcrypt hash in ACCESS_KEY_HASH.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req types.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if !s.accessKeys.VerifyKey(req.AccessKey) {
		invalid := &ErrInvalidAccessKey{}
		s.errorResponse(w, HTTPStatus(invalid), invalid.Error())
		return
	}

	clientID := uuid.New()
	token, err := s.jwtService.GenerateToken(clientID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"token":      token,
		"token_type": "Bearer",
		"client_id":  clientID.String(),
		"issued_at":  time.Now().UTC().Format(time.RFC3339),
	})
}
