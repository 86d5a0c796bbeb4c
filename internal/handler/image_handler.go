package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/emlakofis/backend/internal/service"
	"github.com/emlakofis/backend/internal/storage"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5 MB

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageHandler handles listing photo upload and removal (admin only).
type ImageHandler struct {
	storage        storage.Storage
	listingService service.ListingService
	imageURLSetter ImageURLSetter
}

// ImageURLSetter updates the stored cover image URL of a listing.
type ImageURLSetter interface {
	UpdateImageURL(ctx context.Context, id, imageURL string) error
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(store storage.Storage, ls service.ListingService, setter ImageURLSetter) *ImageHandler {
	return &ImageHandler{storage: store, listingService: ls, imageURLSetter: setter}
}

// Upload handles POST /api/admin/listings/{id}/image.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	listingID := r.PathValue("id")
	listing, err := h.listingService.GetByID(r.Context(), listingID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "image_required"})
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[ct]
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_content_type"})
		return
	}

	// Replace the previous photo, if any.
	if listing.ImageURL != "" {
		_ = h.storage.Delete(r.Context(), strings.TrimPrefix(listing.ImageURL, "/uploads/"))
	}

	key := path.Join("listings", listingID, uuid.NewString()+ext)
	imageURL, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		slog.Error("image upload failed", "error", err, "listing_id", listingID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "upload_failed"})
		return
	}

	if err := h.imageURLSetter.UpdateImageURL(r.Context(), listingID, imageURL); err != nil {
		slog.Error("image url update failed", "error", err, "listing_id", listingID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"image_url": imageURL})
}

// Delete handles DELETE /api/admin/listings/{id}/image.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	listingID := r.PathValue("id")
	listing, err := h.listingService.GetByID(r.Context(), listingID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	if listing.ImageURL != "" {
		_ = h.storage.Delete(r.Context(), strings.TrimPrefix(listing.ImageURL, "/uploads/"))
	}

	if err := h.imageURLSetter.UpdateImageURL(r.Context(), listingID, ""); err != nil {
		slog.Error("image url clear failed", "error", err, "listing_id", listingID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
