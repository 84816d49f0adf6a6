package idp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "OK")
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	user, ok := s.users[strings.ToLower(req.Username)]
	if !ok || !CheckPasswordHash(req.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	access, err := s.mintAccessToken(user.Username)
	if err != nil {
		log.Err(err).Msg("failed to mint access token")
		writeError(w, http.StatusInternalServerError, "token generation failed")
		return
	}
	refresh, err := s.newRefreshToken(user.Username)
	if err != nil {
		log.Err(err).Msg("failed to generate refresh token")
		writeError(w, http.StatusInternalServerError, "token generation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access":  access,
		"refresh": refresh,
		"user": map[string]string{
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func (s *Server) verifyHandler(w http.ResponseWriter, r *http.Request) {
	raw := bearerToken(r)
	if raw == "" {
		var req verifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			raw = req.Token
		}
	}

	if raw == "" || !s.validateAccessToken(raw) {
		writeError(w, http.StatusUnauthorized, "token invalid or expired")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{})
}

func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	username, ok := s.refreshTokenOwner(req.Refresh)
	if !ok {
		writeError(w, http.StatusUnauthorized, "refresh token invalid")
		return
	}

	access, err := s.mintAccessToken(username)
	if err != nil {
		log.Err(err).Msg("failed to mint access token")
		writeError(w, http.StatusInternalServerError, "token generation failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access": access})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
