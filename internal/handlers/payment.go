package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// PaymentGateway creates payment intents with an external processor.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount float64) (string, error)
}

type PaymentHandler struct {
	gateway PaymentGateway
}

func NewPaymentHandler(gateway PaymentGateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

// CreateIntent handles POST /create-payment-intent with body
// {"donationAmount": number} and returns the gateway's client secret.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DonationAmount float64 `json:"donationAmount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	secret, err := h.gateway.CreatePaymentIntent(r.Context(), body.DonationAmount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": secret})
}
