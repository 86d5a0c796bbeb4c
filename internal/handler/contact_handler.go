package handler

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/emlakofis/backend/internal/antispam"
	"github.com/emlakofis/backend/internal/model"
	"github.com/emlakofis/backend/internal/ratelimit"
	"github.com/emlakofis/backend/internal/service"
	"github.com/emlakofis/backend/internal/validate"
)

// ContactHandler handles contact form submission and the moderation view.
//
// Submit runs the full pipeline: abuse heuristics → rate limit → validation
// → persist → notify. Requests tripping the heuristics are dropped silently:
// the client receives a normal success response so automated senders get no
// feedback to adapt to.
type ContactHandler struct {
	contactService service.ContactService
	limiter        ratelimit.Limiter
	detector       *antispam.Detector
	validator      validate.Options

	// trustedProxyCount controls which X-Forwarded-For entry is the real
	// client. Assumes a single reverse proxy (nginx) by default.
	trustedProxyCount int
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc service.ContactService, limiter ratelimit.Limiter, detector *antispam.Detector, validator validate.Options) *ContactHandler {
	return &ContactHandler{
		contactService:    svc,
		limiter:           limiter,
		detector:          detector,
		validator:         validator,
		trustedProxyCount: 1,
	}
}

// rateLimitInfo is embedded in successful submission responses.
type rateLimitInfo struct {
	Remaining int   `json:"remaining"`
	ResetTime int64 `json:"resetTime"` // unix millis
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ip := h.clientIP(r)

	// Heuristics first: a flagged request is answered as if it succeeded,
	// with no side effects (dropSilently policy).
	if h.detector.SuspiciousIP(ip) || antispam.SuspiciousUserAgent(r.UserAgent()) {
		slog.Info("contact submission dropped", "ip", ip, "user_agent", r.UserAgent())
		_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
		return
	}

	dec, err := h.limiter.Allow(r.Context(), ip)
	if err != nil {
		// Limiter backend unavailable: the decision already fails open.
		slog.Error("rate limiter check failed", "error", err, "ip", ip)
	}
	if !dec.Allowed {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":     "Çok fazla istek gönderildi. Lütfen daha sonra tekrar deneyin.",
			"resetTime": dec.ResetTime.UnixMilli(),
		})
		return
	}

	var raw validate.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":   "Geçersiz form verisi",
			"details": []string{"Gönderim çözümlenemedi"},
		})
		return
	}

	res := h.validator.ContactForm(raw)
	if !res.Valid {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":   "Geçersiz form verisi",
			"details": res.Errors,
		})
		return
	}

	msg := &model.ContactMessage{
		Name:    res.Sanitized.Name,
		Email:   res.Sanitized.Email,
		Phone:   res.Sanitized.Phone,
		Subject: res.Sanitized.Subject,
		Message: res.Sanitized.Message,
	}
	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		slog.Error("contact submit failed", "error", err, "ip", ip)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "Mesajınız kaydedilemedi. Lütfen daha sonra tekrar deneyin.",
		})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok": true,
		"rateLimit": rateLimitInfo{
			Remaining: dec.Remaining,
			ResetTime: dec.ResetTime.UnixMilli(),
		},
	})
}

// adminListResponse is the JSON response for GET /api/admin/contacts.
type adminListResponse struct {
	Messages []*model.ContactMessage `json:"messages"`
}

// AdminList handles GET /api/admin/contacts.
// Supports query params: read (all/read/unread), limit, offset.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	opts := model.ContactListOptions{
		Read:   r.URL.Query().Get("read"),
		Limit:  20,
		Offset: 0,
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	messages, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		slog.Error("contact list failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	_ = json.NewEncoder(w).Encode(adminListResponse{Messages: messages})
}

// MarkRead handles PATCH /api/admin/contacts/{id}/read.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := r.PathValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	if err := h.contactService.MarkRead(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// clientIP extracts the real client IP, reading from the rightmost trusted
// proxy position in X-Forwarded-For to prevent spoofing.
func (h *ContactHandler) clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && h.trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		idx := len(parts) - h.trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
