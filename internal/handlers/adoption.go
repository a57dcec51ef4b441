package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pawhope/pawhope-gobackend/internal/models"
)

// AdoptionStore is the slice of the adoption service the handlers need.
type AdoptionStore interface {
	Create(ctx context.Context, req *models.AdoptionRequest) (string, error)
	ListByOwner(ctx context.Context, email string) ([]models.AdoptionRequest, error)
	Delete(ctx context.Context, id string) error
}

type AdoptionHandler struct {
	service AdoptionStore
}

func NewAdoptionHandler(service AdoptionStore) *AdoptionHandler {
	return &AdoptionHandler{service: service}
}

// Create handles POST /adoption-requests
func (h *AdoptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.AdoptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListByOwner handles GET /adoption-request/{email}
func (h *AdoptionHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListByOwner(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requests)
}

// Delete handles DELETE /delete-adoption-request/{id}
func (h *AdoptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
