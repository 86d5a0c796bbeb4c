package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/emlakofis/backend/internal/service"
	"github.com/emlakofis/backend/pkg/auth"
)

// sessionTTL bounds both the cookie lifetime and the signed token expiry.
const sessionTTL = 12 * time.Hour

// AdminAuthHandler handles back-office login/logout and session introspection.
type AdminAuthHandler struct {
	authService   service.AuthService
	sessionSecret []byte
	secureCookies bool
}

// NewAdminAuthHandler creates an AdminAuthHandler. secureCookies should be
// true everywhere except local development over plain HTTP.
func NewAdminAuthHandler(authService service.AuthService, sessionSecret []byte, secureCookies bool) *AdminAuthHandler {
	return &AdminAuthHandler{
		authService:   authService,
		sessionSecret: sessionSecret,
		secureCookies: secureCookies,
	}
}

// loginRequest is the expected JSON body for POST /api/admin/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_credentials"})
			return
		}
		slog.Error("admin login failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    auth.CreateSessionToken(user.ID, h.sessionSecret, sessionTTL),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})
	_ = json.NewEncoder(w).Encode(user)
}

// Logout handles POST /api/admin/logout.
func (h *AdminAuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// Me handles GET /api/admin/me (behind RequireAdmin).
func (h *AdminAuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	adminID, ok := auth.AdminIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	user, err := h.authService.GetByID(r.Context(), adminID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(user)
}
