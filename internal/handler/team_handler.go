package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/emlakofis/backend/internal/model"
	"github.com/emlakofis/backend/internal/service"
)

// TeamHandler handles the public team page and the admin CRUD.
type TeamHandler struct {
	teamService service.TeamService
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List handles GET /api/team.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	members, err := h.teamService.List(r.Context())
	if err != nil {
		slog.Error("team list failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}
	if members == nil {
		members = []*model.TeamMember{}
	}
	_ = json.NewEncoder(w).Encode(map[string][]*model.TeamMember{"members": members})
}

// teamMemberRequest is the expected JSON body for create/update.
type teamMemberRequest struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	PhotoURL  string `json:"photo_url"`
	SortOrder int    `json:"sort_order"`
}

func (req *teamMemberRequest) toModel() *model.TeamMember {
	return &model.TeamMember{
		Name:      req.Name,
		Title:     req.Title,
		Phone:     req.Phone,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
		SortOrder: req.SortOrder,
	}
}

// Create handles POST /api/admin/team.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req teamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	member := req.toModel()
	if err := h.teamService.Create(r.Context(), member); err != nil {
		if errors.Is(err, service.ErrInvalidTeamMember) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_team_member"})
			return
		}
		slog.Error("team create failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(member)
}

// Update handles PUT /api/admin/team/{id}.
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req teamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	member := req.toModel()
	member.ID = r.PathValue("id")
	if err := h.teamService.Update(r.Context(), member); err != nil {
		if errors.Is(err, service.ErrInvalidTeamMember) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_team_member"})
			return
		}
		writeRepoError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(member)
}

// Delete handles DELETE /api/admin/team/{id}.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.teamService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeRepoError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
