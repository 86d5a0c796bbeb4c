package handler

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// allowedLegalTypes is the allowlist of legal document type names.
// Only these values may be requested via GET /api/legal/{type}.
var allowedLegalTypes = map[string]bool{
	"kvkk":       true,
	"privacy":    true,
	"terms":      true,
	"disclaimer": true,
}

// LegalConfig holds configuration for the LegalHandler.
type LegalConfig struct {
	// DocsDir is the directory from which legal Markdown files are read.
	// Corresponds to the LEGAL_DOCS_DIR environment variable.
	DocsDir string
}

// LegalHandler serves the KVKK notice and other legal texts.
type LegalHandler struct {
	cfg LegalConfig
}

// NewLegalHandler creates a LegalHandler with the given configuration.
func NewLegalHandler(cfg LegalConfig) *LegalHandler {
	return &LegalHandler{cfg: cfg}
}

// Legal handles GET /api/legal/{type}.
// Returns the Markdown content of the requested document, 404 when missing.
// Rejects path traversal attempts with 400.
func (h *LegalHandler) Legal(w http.ResponseWriter, r *http.Request) {
	docType := r.PathValue("type")

	if strings.Contains(docType, "/") || strings.Contains(docType, "\\") || strings.Contains(docType, "..") {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !allowedLegalTypes[docType] {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	absDir, err := filepath.Abs(h.cfg.DocsDir)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	data, err := os.ReadFile(filepath.Join(absDir, docType+".md"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write(data)
}
