package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent(t *testing.T) {
	var gotPath, gotAmount, gotCurrency, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		gotPath = r.URL.Path
		gotAmount = r.PostForm.Get("amount")
		gotCurrency = r.PostForm.Get("currency")
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc"}`))
	}))
	defer server.Close()

	s := NewStripeService("sk_test_key", server.URL)
	secret, err := s.CreatePaymentIntent(context.Background(), 10.50)

	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", secret)
	assert.Equal(t, "/v1/payment_intents", gotPath)
	assert.Equal(t, "1050", gotAmount)
	assert.Equal(t, "usd", gotCurrency)
	assert.Equal(t, "Bearer sk_test_key", gotAuth)
}

func TestCreatePaymentIntentZeroAmount(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	s := NewStripeService("sk_test_key", server.URL)

	_, err := s.CreatePaymentIntent(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = s.CreatePaymentIntent(context.Background(), -5)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.False(t, called, "gateway must not be called for invalid amounts")
}

func TestCreatePaymentIntentGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"card declined"}}`))
	}))
	defer server.Close()

	s := NewStripeService("sk_test_key", server.URL)
	_, err := s.CreatePaymentIntent(context.Background(), 20)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stripe error")
}
