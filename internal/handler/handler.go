package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emlakofis/backend/internal/repository"
)

// DB is the minimal database surface the base handler needs.
type DB interface {
	Ping(ctx context.Context) error
}

// Handler carries cross-cutting dependencies for the plain endpoints.
type Handler struct {
	db          DB
	frontendURL string
}

// New creates the base Handler.
func New(db DB, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

// CORS allows the public site origin to call the API with credentials.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeRepoError maps repository errors to a JSON response: ErrNotFound
// becomes 404, anything else a generic 500 with no internal detail.
func writeRepoError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
}
