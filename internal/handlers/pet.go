package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawhope/pawhope-gobackend/internal/models"
	"github.com/pawhope/pawhope-gobackend/internal/services"
)

// PetStore is the slice of the pet service the handlers need.
type PetStore interface {
	List(ctx context.Context, q services.PetListQuery) ([]models.Pet, error)
	ListAll(ctx context.Context) ([]models.Pet, error)
	ListByOwner(ctx context.Context, email string) ([]models.Pet, error)
	Get(ctx context.Context, id string) (*models.Pet, error)
	Create(ctx context.Context, pet *models.Pet) (string, error)
	Update(ctx context.Context, id string, pet *models.Pet) error
	Delete(ctx context.Context, id string) error
	SetAdopted(ctx context.Context, id string, adopted bool) error
}

type PetHandler struct {
	service PetStore
}

func NewPetHandler(service PetStore) *PetHandler {
	return &PetHandler{service: service}
}

// List handles GET /pets with optional name, category, sort and page params.
func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))

	pets, err := h.service.List(r.Context(), services.PetListQuery{
		Name:     query.Get("name"),
		Category: query.Get("category"),
		Sort:     query.Get("sort"),
		Page:     page,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pets)
}

// ListAll handles GET /all-pets (admin)
func (h *PetHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	pets, err := h.service.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pets)
}

// ListByOwner handles GET /pets/{email}
func (h *PetHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	pets, err := h.service.ListByOwner(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pets)
}

// Get handles GET /pet/{id}
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	pet, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

// Create handles POST /pets
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var pet models.Pet
	if err := json.NewDecoder(r.Body).Decode(&pet); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	id, err := h.service.Create(r.Context(), &pet)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Update handles PUT /pets/{id}
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var pet models.Pet
	if err := json.NewDecoder(r.Body).Decode(&pet); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	if err := h.service.Update(r.Context(), mux.Vars(r)["id"], &pet); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete handles DELETE /delete-pet/{id}
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// SetAdopted handles PATCH /adopt-pet/{id} with body {"adopted": bool}.
func (h *PetHandler) SetAdopted(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Adopted bool `json:"adopted"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	if err := h.service.SetAdopted(r.Context(), mux.Vars(r)["id"], body.Adopted); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
