package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawhope/pawhope-gobackend/internal/models"
)

// CampaignStore is the slice of the campaign service the handlers need; it
// covers both campaigns and the donations recorded against them.
type CampaignStore interface {
	List(ctx context.Context, page int) ([]models.DonationCampaign, error)
	ListAll(ctx context.Context) ([]models.DonationCampaign, error)
	Get(ctx context.Context, id string) (*models.DonationCampaign, error)
	Create(ctx context.Context, campaign *models.DonationCampaign) (string, error)
	Update(ctx context.Context, id string, campaign *models.DonationCampaign) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	ActiveSample(ctx context.Context) ([]models.DonationCampaign, error)
	ListByAsker(ctx context.Context, email string) ([]models.DonationCampaign, error)
	CreateDonation(ctx context.Context, donation *models.Donation) (string, error)
	ListDonations(ctx context.Context, campaignID string) ([]models.Donation, error)
	DeleteDonation(ctx context.Context, id string) error
	AdjustDonatedAmount(ctx context.Context, id string, amount float64, status string) error
	ListDonationsByDonator(ctx context.Context, email string) ([]models.Donation, error)
}

type CampaignHandler struct {
	service CampaignStore
}

func NewCampaignHandler(service CampaignStore) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// List handles GET /donation-campaigns with an optional page param.
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	campaigns, err := h.service.List(r.Context(), page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, campaigns)
}

// ListAll handles GET /all-donation-campaigns (admin)
func (h *CampaignHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.service.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, campaigns)
}

// Get handles GET /donation-campaign/{id}
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

// Create handles POST /donation-campaigns
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var campaign models.DonationCampaign
	if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	id, err := h.service.Create(r.Context(), &campaign)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Update handles PUT /update-donation-campaign/{id}
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	var campaign models.DonationCampaign
	if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	if err := h.service.Update(r.Context(), mux.Vars(r)["id"], &campaign); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// SetStatus handles PATCH /donation-status/{id} with body {"status": string}.
func (h *CampaignHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	if err := h.service.SetStatus(r.Context(), mux.Vars(r)["id"], body.Status); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete handles DELETE /donations/{id} (admin)
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ActiveSample handles GET /active-donations
func (h *CampaignHandler) ActiveSample(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.service.ActiveSample(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, campaigns)
}

// MyCampaigns handles GET /my-donation-campaigns/{email}
func (h *CampaignHandler) MyCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.service.ListByAsker(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, campaigns)
}

// CreateDonation handles POST /donations. Donations against a non-active
// campaign are rejected with a 400.
func (h *CampaignHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var donation models.Donation
	if err := json.NewDecoder(r.Body).Decode(&donation); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	id, err := h.service.CreateDonation(r.Context(), &donation)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListDonators handles GET /donator-list/{id}
func (h *CampaignHandler) ListDonators(w http.ResponseWriter, r *http.Request) {
	donations, err := h.service.ListDonations(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, donations)
}

// RefundDonation handles DELETE /refund-donation/{id}. Only the donation
// record is removed; the campaign total is adjusted by a separate call.
func (h *CampaignHandler) RefundDonation(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteDonation(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// AdjustDonatedAmount handles PATCH /donation-campaign/donatedAmount/{id}
// with body {"donationAmount": number, "status": string}.
func (h *CampaignHandler) AdjustDonatedAmount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DonationAmount float64 `json:"donationAmount"`
		Status         string  `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	err := h.service.AdjustDonatedAmount(r.Context(), mux.Vars(r)["id"], body.DonationAmount, body.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// MyDonations handles GET /my-donations/{email}
func (h *CampaignHandler) MyDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.service.ListDonationsByDonator(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, donations)
}
