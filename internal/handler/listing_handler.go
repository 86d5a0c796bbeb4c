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

// ListingHandler handles public listing reads and the admin CRUD.
type ListingHandler struct {
	listingService service.ListingService
}

// NewListingHandler creates a ListingHandler.
func NewListingHandler(listingService service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// listingListResponse is the JSON response for listing queries.
type listingListResponse struct {
	Listings []*model.Listing `json:"listings"`
}

func parseListingOptions(r *http.Request) model.ListingListOptions {
	q := r.URL.Query()
	opts := model.ListingListOptions{
		Type:     q.Get("type"),
		City:     q.Get("city"),
		District: q.Get("district"),
		Featured: q.Get("featured") == "true",
		Limit:    20,
	}
	if v := q.Get("min_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			opts.MinPrice = n
		}
	}
	if v := q.Get("max_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			opts.MaxPrice = n
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			opts.Offset = n
		}
	}
	return opts
}

// List handles GET /api/listings. Only active listings are visible here.
func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	opts := parseListingOptions(r)
	opts.Status = model.ListingStatusActive

	h.writeList(w, r, opts)
}

// AdminList handles GET /api/admin/listings. Shows all statuses, with an
// optional status filter.
func (h *ListingHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	opts := parseListingOptions(r)
	opts.Status = r.URL.Query().Get("status")

	h.writeList(w, r, opts)
}

func (h *ListingHandler) writeList(w http.ResponseWriter, r *http.Request, opts model.ListingListOptions) {
	listings, err := h.listingService.List(r.Context(), opts)
	if err != nil {
		slog.Error("listing list failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}
	if listings == nil {
		listings = []*model.Listing{}
	}
	_ = json.NewEncoder(w).Encode(listingListResponse{Listings: listings})
}

// Get handles GET /api/listings/{id}.
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := r.PathValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	listing, err := h.listingService.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	// Passive listings are only reachable through the admin API.
	if listing.Status != model.ListingStatusActive {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		return
	}
	_ = json.NewEncoder(w).Encode(listing)
}

// AdminGet handles GET /api/admin/listings/{id}.
func (h *ListingHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	listing, err := h.listingService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(listing)
}

// listingRequest is the expected JSON body for create/update.
type listingRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	PropertyType string `json:"property_type"`
	City         string `json:"city"`
	District     string `json:"district"`
	Price        int64  `json:"price"`
	Currency     string `json:"currency"`
	Rooms        string `json:"rooms"`
	AreaM2       int    `json:"area_m2"`
	Status       string `json:"status"`
	Featured     bool   `json:"featured"`
}

func (req *listingRequest) toModel() *model.Listing {
	return &model.Listing{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		PropertyType: req.PropertyType,
		City:         req.City,
		District:     req.District,
		Price:        req.Price,
		Currency:     req.Currency,
		Rooms:        req.Rooms,
		AreaM2:       req.AreaM2,
		Status:       req.Status,
		Featured:     req.Featured,
	}
}

// Create handles POST /api/admin/listings.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req listingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	listing := req.toModel()
	if err := h.listingService.Create(r.Context(), listing); err != nil {
		if errors.Is(err, service.ErrInvalidListing) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_listing"})
			return
		}
		slog.Error("listing create failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(listing)
}

// Update handles PUT /api/admin/listings/{id}.
func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req listingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	listing := req.toModel()
	listing.ID = r.PathValue("id")
	if err := h.listingService.Update(r.Context(), listing); err != nil {
		if errors.Is(err, service.ErrInvalidListing) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_listing"})
			return
		}
		writeRepoError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(listing)
}

// Delete handles DELETE /api/admin/listings/{id}.
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.listingService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeRepoError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
