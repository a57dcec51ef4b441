package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/pawhope/pawhope-gobackend/internal/services"
)

// mockStatsStore implements StatsStore.
type mockStatsStore struct {
	OverviewFunc func(ctx context.Context, email string) (*services.OverviewStats, error)
}

func (m *mockStatsStore) Overview(ctx context.Context, email string) (*services.OverviewStats, error) {
	if m.OverviewFunc != nil {
		return m.OverviewFunc(ctx, email)
	}
	return nil, errMock
}

func TestOverviewZeroDonations(t *testing.T) {
	store := &mockStatsStore{
		OverviewFunc: func(ctx context.Context, email string) (*services.OverviewStats, error) {
			return &services.OverviewStats{TotalPets: 2, MyDonationCampaigns: 1}, nil
		},
	}
	h := NewStatsHandler(store)

	r := httptest.NewRequest(http.MethodGet, "/overview-stats/buddy@example.com", nil)
	r = mux.SetURLVars(r, map[string]string{"email": "buddy@example.com"})
	w := httptest.NewRecorder()

	h.Overview(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	// totalDonations is always present, 0 when the user never donated.
	assert.JSONEq(t,
		`{"totalPets":2,"myDonationCampaigns":1,"myAdoptionRequests":0,"totalDonations":0}`,
		w.Body.String())
}
