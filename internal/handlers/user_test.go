package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhope/pawhope-gobackend/internal/models"
	"github.com/pawhope/pawhope-gobackend/internal/services"
)

// mockUserStore implements UserStore.
type mockUserStore struct {
	UpsertByEmailFunc  func(ctx context.Context, email string, user *models.User) (*models.User, error)
	GetRoleFunc        func(ctx context.Context, email string) (string, error)
	UserListFunc       func(ctx context.Context) ([]models.User, error)
	PromoteToAdminFunc func(ctx context.Context, email string) error
}

func (m *mockUserStore) UpsertByEmail(ctx context.Context, email string, user *models.User) (*models.User, error) {
	if m.UpsertByEmailFunc != nil {
		return m.UpsertByEmailFunc(ctx, email, user)
	}
	return nil, errMock
}

func (m *mockUserStore) GetRole(ctx context.Context, email string) (string, error) {
	if m.GetRoleFunc != nil {
		return m.GetRoleFunc(ctx, email)
	}
	return "", errMock
}

func (m *mockUserStore) UserList(ctx context.Context) ([]models.User, error) {
	if m.UserListFunc != nil {
		return m.UserListFunc(ctx)
	}
	return nil, errMock
}

func (m *mockUserStore) PromoteToAdmin(ctx context.Context, email string) error {
	if m.PromoteToAdminFunc != nil {
		return m.PromoteToAdminFunc(ctx, email)
	}
	return errMock
}

// upsertMemory mimics the service's insert-if-absent behavior so the handler
// can be exercised twice with the same email.
func upsertMemory() *mockUserStore {
	stored := map[string]*models.User{}
	return &mockUserStore{
		UpsertByEmailFunc: func(ctx context.Context, email string, user *models.User) (*models.User, error) {
			if existing, ok := stored[email]; ok {
				return existing, nil
			}
			user.Email = email
			user.Role = models.RoleUser
			user.CreatedAt = time.Now()
			stored[email] = user
			return user, nil
		},
	}
}

func TestUpsertIsIdempotent(t *testing.T) {
	h := NewUserHandler(upsertMemory())

	doUpsert := func(name string) models.User {
		body, _ := json.Marshal(map[string]string{"name": name})
		r := httptest.NewRequest(http.MethodPost, "/users/buddy@example.com", bytes.NewReader(body))
		r = mux.SetURLVars(r, map[string]string{"email": "buddy@example.com"})
		w := httptest.NewRecorder()

		h.Upsert(w, r)
		require.Equal(t, http.StatusOK, w.Code)

		var user models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		return user
	}

	first := doUpsert("Buddy")
	second := doUpsert("Someone Else")

	assert.Equal(t, "buddy@example.com", first.Email)
	assert.Equal(t, models.RoleUser, first.Role)
	// The second call is a read, not a second insert.
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
}

func TestGetRole(t *testing.T) {
	store := &mockUserStore{
		GetRoleFunc: func(ctx context.Context, email string) (string, error) {
			return models.RoleAdmin, nil
		},
	}
	h := NewUserHandler(store)

	r := httptest.NewRequest(http.MethodGet, "/users/role/admin@example.com", nil)
	r = mux.SetURLVars(r, map[string]string{"email": "admin@example.com"})
	w := httptest.NewRecorder()

	h.GetRole(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"admin"}`, w.Body.String())
}

func TestGetRoleUnknownUser(t *testing.T) {
	store := &mockUserStore{
		GetRoleFunc: func(ctx context.Context, email string) (string, error) {
			return "", services.ErrNotFound
		},
	}
	h := NewUserHandler(store)

	r := httptest.NewRequest(http.MethodGet, "/users/role/ghost@example.com", nil)
	r = mux.SetURLVars(r, map[string]string{"email": "ghost@example.com"})
	w := httptest.NewRecorder()

	h.GetRole(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPromoteToAdmin(t *testing.T) {
	var promoted string
	store := &mockUserStore{
		PromoteToAdminFunc: func(ctx context.Context, email string) error {
			promoted = email
			return nil
		},
	}
	h := NewUserHandler(store)

	r := httptest.NewRequest(http.MethodPatch, "/users/role/buddy@example.com", nil)
	r = mux.SetURLVars(r, map[string]string{"email": "buddy@example.com"})
	w := httptest.NewRecorder()

	h.PromoteToAdmin(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "buddy@example.com", promoted)
}
