package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/pawhope/pawhope-gobackend/internal/auth"
	"github.com/pawhope/pawhope-gobackend/internal/models"
)

type contextKey string

const emailKey contextKey = "email"

// RoleLookup resolves the stored role for an authenticated email.
type RoleLookup interface {
	GetRole(ctx context.Context, email string) (string, error)
}

// Auth gates requests on the JWT cookie and, for admin routes, the stored role.
type Auth struct {
	secret string
	roles  RoleLookup
}

func NewAuth(secret string, roles RoleLookup) *Auth {
	return &Auth{secret: secret, roles: roles}
}

// EmailFromContext returns the authenticated email attached by RequireAuth.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// RequireAuth verifies the access_token cookie and puts the caller's email on
// the request context. Missing or invalid tokens get a 401.
func (a *Auth) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.CookieName)
		if err != nil {
			unauthorized(w, "missing auth token")
			return
		}

		claims, err := auth.ParseToken(cookie.Value, a.secret)
		if err != nil {
			logrus.WithError(err).Debug("token verification failed")
			unauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), emailKey, claims.Email)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin runs RequireAuth, then checks the caller's stored role.
// Unknown users and non-admins get a 403.
func (a *Auth) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return a.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		email := EmailFromContext(r.Context())

		role, err := a.roles.GetRole(r.Context(), email)
		if err != nil || role != models.RoleAdmin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "admin access required"})
			return
		}

		next(w, r)
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
