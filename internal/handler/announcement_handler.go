package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/emlakofis/backend/internal/model"
	"github.com/emlakofis/backend/internal/service"
)

// AnnouncementHandler handles public announcement reads and the admin CRUD.
type AnnouncementHandler struct {
	announcementService service.AnnouncementService
}

// NewAnnouncementHandler creates an AnnouncementHandler.
func NewAnnouncementHandler(svc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: svc}
}

func (h *AnnouncementHandler) list(w http.ResponseWriter, r *http.Request, publishedOnly bool) {
	limit := 20
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	announcements, err := h.announcementService.List(r.Context(), publishedOnly, limit, offset)
	if err != nil {
		slog.Error("announcement list failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}
	if announcements == nil {
		announcements = []*model.Announcement{}
	}
	_ = json.NewEncoder(w).Encode(map[string][]*model.Announcement{"announcements": announcements})
}

// List handles GET /api/announcements (published only).
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.list(w, r, true)
}

// AdminList handles GET /api/admin/announcements (drafts included).
func (h *AnnouncementHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.list(w, r, false)
}

// announcementRequest is the expected JSON body for create/update.
type announcementRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

// Create handles POST /api/admin/announcements.
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	a := &model.Announcement{Title: req.Title, Body: req.Body, Published: req.Published}
	if err := h.announcementService.Create(r.Context(), a); err != nil {
		if errors.Is(err, service.ErrInvalidAnnouncement) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_announcement"})
			return
		}
		slog.Error("announcement create failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// Update handles PUT /api/admin/announcements/{id}.
func (h *AnnouncementHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	a := &model.Announcement{ID: r.PathValue("id"), Title: req.Title, Body: req.Body, Published: req.Published}
	if err := h.announcementService.Update(r.Context(), a); err != nil {
		if errors.Is(err, service.ErrInvalidAnnouncement) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_announcement"})
			return
		}
		writeRepoError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(a)
}

// Delete handles DELETE /api/admin/announcements/{id}.
func (h *AnnouncementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.announcementService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeRepoError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
