package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/domain/catalog"
	"catalog-admin/pkg/common"
)

// ProviderHandler handles provider-related HTTP requests
type ProviderHandler struct {
	providers ports.ProviderService
	logger    *zap.Logger
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(providers ports.ProviderService, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{providers: providers, logger: logger}
}

// List handles GET /api/providers
func (h *ProviderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.ProviderFilter{
		Status:   q.Get("status"),
		Industry: q.Get("industry"),
		Tag:      q.Get("tag"),
		Search:   q.Get("search"),
		Limit:    common.ParseLimit(r),
	}

	result, err := h.providers.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(result))
}

// Get handles GET /api/providers/{id}
func (h *ProviderHandler) Get(w http.ResponseWriter, r *http.Request) {
	provider, err := h.providers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(provider))
}

// Create handles POST /api/providers
func (h *ProviderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ports.CreateProviderInput
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	provider, err := h.providers.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusCreated, common.OK(provider).WithMessage("Provider created"))
}

// Update handles PUT and PATCH /api/providers/{id}
func (h *ProviderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch catalog.ProviderPatch
	if err := decodeLenient(w, r, &patch); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	provider, err := h.providers.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(provider).WithMessage("Provider updated"))
}

// Delete handles DELETE /api/providers/{id}
func (h *ProviderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.providers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(nil).WithMessage("Provider deleted"))
}
