package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pawhope/pawhope-gobackend/internal/models"
)

// UserStore is the slice of the user service the handlers need.
type UserStore interface {
	UpsertByEmail(ctx context.Context, email string, user *models.User) (*models.User, error)
	GetRole(ctx context.Context, email string) (string, error)
	UserList(ctx context.Context) ([]models.User, error)
	PromoteToAdmin(ctx context.Context, email string) error
}

type UserHandler struct {
	service UserStore
}

func NewUserHandler(service UserStore) *UserHandler {
	return &UserHandler{service: service}
}

// Upsert handles POST /users/{email}. The first call stores the user with the
// default role; repeat calls return the stored document unchanged.
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	stored, err := h.service.UpsertByEmail(r.Context(), email, &user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

// GetRole handles GET /users/role/{email}
func (h *UserHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.service.GetRole(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"role": role})
}

// List handles GET /users (admin)
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.UserList(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// PromoteToAdmin handles PATCH /users/role/{email} (admin)
func (h *UserHandler) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if err := h.service.PromoteToAdmin(r.Context(), email); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
