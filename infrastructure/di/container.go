package di

import (
	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/infrastructure/config"
	"catalog-admin/interfaces/http/rest"
	"catalog-admin/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Metrics     *observability.Metrics
	Diagnostics ports.DiagnosticsService
	Router      *rest.Router
}
