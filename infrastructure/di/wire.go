//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"catalog-admin/infrastructure/config"
	"catalog-admin/interfaces/http/rest"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideTables,
	ProvideProductRepository,
	ProvideProviderRepository,
	ProvideUserRepository,
	ProvideLogoRepository,
	ProvideEventPublisher,
	ProvideSessionManager,
	ProvideCredentialsProvider,
	ProvideAuthService,
	ProvideProductService,
	ProvideProviderService,
	ProvideUserService,
	ProvideLogoService,
	ProvideStatsService,
	ProvideTagService,
	ProvideDiagnosticsService,
	ProvideLoginLimiter,
	ProvideRouterOptions,
	wire.Struct(new(rest.Services), "*"),
	rest.NewRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, func(), error) {
	wire.Build(SuperSet)
	return nil, nil, nil // Wire will replace this
}
