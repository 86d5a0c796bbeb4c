package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const adminIDKey contextKey = "admin_id"

// AdminIDFromContext returns the authenticated admin account id, if any.
func AdminIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(adminIDKey).(string)
	return v, ok
}

// WithAdminID stores the admin account id in the context.
func WithAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, adminIDKey, adminID)
}

// RequireAdmin guards back-office routes. It verifies the session cookie and
// puts the admin id into the request context.
func RequireAdmin(sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			adminID, err := VerifySessionToken(cookie.Value, sessionSecret)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_session"})
				return
			}

			ctx := WithAdminID(r.Context(), adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
