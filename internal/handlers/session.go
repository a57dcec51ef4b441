package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pawhope/pawhope-gobackend/internal/auth"
)

// SessionHandler issues and clears the JWT auth cookie.
type SessionHandler struct {
	secret string
	isProd bool
}

func NewSessionHandler(secret string, isProd bool) *SessionHandler {
	return &SessionHandler{secret: secret, isProd: isProd}
}

// IssueToken handles POST /jwt
func (h *SessionHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if body.Email == "" {
		badRequest(w, "email is required")
		return
	}

	token, err := auth.GenerateToken(body.Email, h.secret)
	if err != nil {
		writeError(w, err)
		return
	}

	auth.SetAuthCookie(w, token, h.isProd)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout handles GET /logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearAuthCookie(w, h.isProd)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
