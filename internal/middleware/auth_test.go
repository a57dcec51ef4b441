package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhope/pawhope-gobackend/internal/auth"
	"github.com/pawhope/pawhope-gobackend/internal/models"
)

const testSecret = "test-secret"

// mockRoleLookup implements RoleLookup for testing.
type mockRoleLookup struct {
	GetRoleFunc func(ctx context.Context, email string) (string, error)
}

func (m *mockRoleLookup) GetRole(ctx context.Context, email string) (string, error) {
	if m.GetRoleFunc != nil {
		return m.GetRoleFunc(ctx, email)
	}
	return "", errors.New("no role")
}

func authedRequest(t *testing.T, email string) *http.Request {
	t.Helper()
	token, err := auth.GenerateToken(email, testSecret)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	return r
}

func TestRequireAuthNoCookie(t *testing.T) {
	mw := NewAuth(testSecret, &mockRoleLookup{})
	handler := mw.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBadToken(t *testing.T) {
	mw := NewAuth(testSecret, &mockRoleLookup{})
	handler := mw.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	r := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"})

	w := httptest.NewRecorder()
	handler(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAttachesEmail(t *testing.T) {
	mw := NewAuth(testSecret, &mockRoleLookup{})

	var gotEmail string
	handler := mw.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		gotEmail = EmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	handler(w, authedRequest(t, "buddy@example.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "buddy@example.com", gotEmail)
}

func TestRequireAdminNonAdmin(t *testing.T) {
	roles := &mockRoleLookup{
		GetRoleFunc: func(ctx context.Context, email string) (string, error) {
			return models.RoleUser, nil
		},
	}
	mw := NewAuth(testSecret, roles)
	handler := mw.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	w := httptest.NewRecorder()
	handler(w, authedRequest(t, "buddy@example.com"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminUnknownUser(t *testing.T) {
	roles := &mockRoleLookup{
		GetRoleFunc: func(ctx context.Context, email string) (string, error) {
			return "", errors.New("not found")
		},
	}
	mw := NewAuth(testSecret, roles)
	handler := mw.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	w := httptest.NewRecorder()
	handler(w, authedRequest(t, "ghost@example.com"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminNoCookie(t *testing.T) {
	mw := NewAuth(testSecret, &mockRoleLookup{})
	handler := mw.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	// Auth runs before the role check, so a missing cookie is a 401 not a 403.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	roles := &mockRoleLookup{
		GetRoleFunc: func(ctx context.Context, email string) (string, error) {
			assert.Equal(t, "admin@example.com", email)
			return models.RoleAdmin, nil
		},
	}
	mw := NewAuth(testSecret, roles)

	ran := false
	handler := mw.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	handler(w, authedRequest(t, "admin@example.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ran)
}
