package handler

import (
	"log/slog"
	"net/http"

	"github.com/pampered-pooch/site-api/internal/application/sitecontent"
)

const msgConfigFailed = "Failed to load configuration"

// SiteContentHandler serves the business-info and services override documents.
type SiteContentHandler struct {
	svc *sitecontent.Service
}

func NewSiteContentHandler(svc *sitecontent.Service) *SiteContentHandler {
	return &SiteContentHandler{svc: svc}
}

// Get handles GET /api/config.
func (h *SiteContentHandler) Get(w http.ResponseWriter, _ *http.Request) {
	cfg, err := h.svc.Get()
	if err != nil {
		slog.Error("load site configuration", "err", err)
		writeError(w, http.StatusInternalServerError, msgConfigFailed)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}
