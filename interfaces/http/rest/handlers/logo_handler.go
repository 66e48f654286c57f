package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/domain/catalog"
	"catalog-admin/pkg/common"
)

// LogoHandler handles client logo requests
type LogoHandler struct {
	logos  ports.LogoService
	logger *zap.Logger
}

// NewLogoHandler creates a new logo handler
func NewLogoHandler(logos ports.LogoService, logger *zap.Logger) *LogoHandler {
	return &LogoHandler{logos: logos, logger: logger}
}

// List handles GET /api/logos
func (h *LogoHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.LogoFilter{
		ClientID:    q.Get("clientId"),
		Variant:     q.Get("variant"),
		Status:      q.Get("status"),
		PrimaryOnly: common.ParseBool(r, "primary"),
		Limit:       common.ParseLimit(r),
	}

	result, err := h.logos.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(result))
}

// Get handles GET /api/logos/{id}
func (h *LogoHandler) Get(w http.ResponseWriter, r *http.Request) {
	logo, err := h.logos.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(logo))
}

// Create handles POST /api/logos
func (h *LogoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ports.CreateLogoInput
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	logo, err := h.logos.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusCreated, common.OK(logo).WithMessage("Logo created"))
}

// Update handles PUT and PATCH /api/logos/{id}
func (h *LogoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch catalog.LogoPatch
	if err := decodeLenient(w, r, &patch); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	logo, err := h.logos.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(logo).WithMessage("Logo updated"))
}

// SetPrimary handles POST /api/logos/{id}/primary
func (h *LogoHandler) SetPrimary(w http.ResponseWriter, r *http.Request) {
	logo, err := h.logos.SetPrimary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(logo).WithMessage("Primary logo set"))
}

// Delete handles DELETE /api/logos/{id}
func (h *LogoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.logos.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(nil).WithMessage("Logo deleted"))
}
