package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhope/pawhope-gobackend/internal/auth"
)

func TestIssueTokenSetsCookie(t *testing.T) {
	h := NewSessionHandler("test-secret", false)

	r := httptest.NewRequest(http.MethodPost, "/jwt",
		bytes.NewReader([]byte(`{"email":"buddy@example.com"}`)))
	w := httptest.NewRecorder()

	h.IssueToken(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)

	claims, err := auth.ParseToken(cookies[0].Value, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "buddy@example.com", claims.Email)
}

func TestIssueTokenMissingEmail(t *testing.T) {
	h := NewSessionHandler("test-secret", false)

	r := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()

	h.IssueToken(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLogoutClearsCookie(t *testing.T) {
	h := NewSessionHandler("test-secret", false)

	w := httptest.NewRecorder()
	h.Logout(w, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
