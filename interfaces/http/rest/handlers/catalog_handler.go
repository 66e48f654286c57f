package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/pkg/common"
)

// CatalogHandler serves the aggregate read endpoints: stats and tags.
type CatalogHandler struct {
	stats  ports.StatsService
	tags   ports.TagService
	logger *zap.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(stats ports.StatsService, tags ports.TagService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{stats: stats, tags: tags, logger: logger}
}

// Stats handles GET /api/stats
func (h *CatalogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.Summary(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(summary))
}

// Tags handles GET /api/tags. The list is a top-level "tags" field, not "data".
func (h *CatalogHandler) Tags(w http.ResponseWriter, r *http.Request) {
	list, err := h.tags.List(r.Context(), r.URL.Query().Get("source"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if list == nil {
		list = []string{}
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(nil).With("tags", list))
}

// TagColors handles GET /api/tags/colors
func (h *CatalogHandler) TagColors(w http.ResponseWriter, r *http.Request) {
	colors, err := h.tags.Colors(r.Context(), r.URL.Query().Get("source"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(colors))
}
