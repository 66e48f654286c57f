package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/pkg/common"
)

// SystemHandler serves health, readiness and debug diagnostics.
type SystemHandler struct {
	diagnostics   ports.DiagnosticsService
	configSummary map[string]interface{}
	logger        *zap.Logger
}

// NewSystemHandler creates a new system handler. configSummary must not contain secrets.
func NewSystemHandler(diagnostics ports.DiagnosticsService, configSummary map[string]interface{}, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{diagnostics: diagnostics, configSummary: configSummary, logger: logger}
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.logger, http.StatusOK, common.OK(nil).With("status", "healthy"))
}

// Ready handles GET /ready. Every table must answer DescribeTable.
func (h *SystemHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.diagnostics.Ready(r.Context()) {
		respond(w, r, h.logger, http.StatusServiceUnavailable,
			common.Fail(common.StandardErrorCodes.ServiceUnavailable, "not ready").With("status", "not_ready"))
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(nil).With("status", "ready"))
}

// Connection handles GET /api/debug/connection
func (h *SystemHandler) Connection(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.logger, http.StatusOK, common.OK(h.diagnostics.Connections(r.Context())))
}

// Config handles GET /api/debug/config
func (h *SystemHandler) Config(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.logger, http.StatusOK, common.OK(h.configSummary))
}
