package di

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/application/services"
	"catalog-admin/domain/catalog"
	"catalog-admin/infrastructure/config"
	"catalog-admin/infrastructure/messaging/eventbridge"
	"catalog-admin/infrastructure/persistence/dynamodb"
	"catalog-admin/interfaces/http/rest"
	"catalog-admin/pkg/auth"
	"catalog-admin/pkg/observability"
)

// ProvideLogger creates a new logger instance. The cleanup flushes buffered entries.
func ProvideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := observability.NewLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// ProvideMetrics creates the Prometheus collectors on a private registry
func ProvideMetrics() *observability.Metrics {
	return observability.NewMetrics("catalog")
}

// ProvideAWSConfig creates AWS configuration with adaptive retries. A configured
// static key pair replaces the default credential chain.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithRetryMode(aws.RetryModeAdaptive),
		awsconfig.WithRetryMaxAttempts(cfg.AWSMaxAttempts),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// ProvideDynamoDBClient creates a DynamoDB client behind the store circuit breaker
func ProvideDynamoDBClient(awsCfg aws.Config, cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics) dynamodb.DynamoDBAPI {
	client := awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
	return dynamodb.NewBreakerClient(client, dynamodb.DefaultBreakerConfig(), logger, metrics.BreakerTransition)
}

// ProvideTables maps the configured table and index names
func ProvideTables(cfg *config.Config) dynamodb.Tables {
	return dynamodb.Tables{
		Users:       cfg.UsersTable,
		Products:    cfg.ProductsTable,
		Providers:   cfg.ProvidersTable,
		Logos:       cfg.LogosTable,
		UsersEmail:  cfg.UsersEmailIndex,
		LogosClient: cfg.LogosClientIndex,
	}
}

// ProvideProductRepository creates a product repository
func ProvideProductRepository(client dynamodb.DynamoDBAPI, tables dynamodb.Tables, logger *zap.Logger, metrics *observability.Metrics) ports.ProductRepository {
	return dynamodb.NewProductRepository(client, tables, logger, metrics)
}

// ProvideProviderRepository creates a provider repository
func ProvideProviderRepository(client dynamodb.DynamoDBAPI, tables dynamodb.Tables, logger *zap.Logger, metrics *observability.Metrics) ports.ProviderRepository {
	return dynamodb.NewProviderRepository(client, tables, logger, metrics)
}

// ProvideUserRepository creates a user repository
func ProvideUserRepository(client dynamodb.DynamoDBAPI, tables dynamodb.Tables, logger *zap.Logger, metrics *observability.Metrics) ports.UserRepository {
	return dynamodb.NewUserRepository(client, tables, logger, metrics)
}

// ProvideLogoRepository creates a logo repository
func ProvideLogoRepository(client dynamodb.DynamoDBAPI, tables dynamodb.Tables, logger *zap.Logger, metrics *observability.Metrics) ports.LogoRepository {
	return dynamodb.NewLogoRepository(client, tables, logger, metrics)
}

// ProvideEventPublisher publishes to EventBridge, or drops events when no bus is configured
func ProvideEventPublisher(awsCfg aws.Config, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return eventbridge.NoopPublisher{}
	}
	return eventbridge.NewPublisher(awseventbridge.NewFromConfig(awsCfg), cfg.EventBusName, logger)
}

// ProvideSessionManager creates the session token signer. Outside production a
// missing secret is replaced by a per-process random one.
func ProvideSessionManager(cfg *config.Config, logger *zap.Logger) (*auth.SessionManager, error) {
	secret := cfg.AuthSecret
	if secret == "" {
		logger.Warn("AUTH_SECRET not set, sessions will not survive a restart")
		secret = uuid.NewString() + uuid.NewString()
	}
	return auth.NewSessionManager(auth.SessionConfig{
		SecretKey: secret,
		Issuer:    cfg.AuthIssuer,
		Audience:  cfg.AuthAudience,
		TTL:       cfg.SessionTTL,
	})
}

// ProvideCredentialsProvider selects the credentials check for AUTH_MODE
func ProvideCredentialsProvider(cfg *config.Config, users ports.UserRepository, logger *zap.Logger) ports.CredentialsProvider {
	if cfg.AuthMode == config.AuthModeDevelopment {
		logger.Warn("Development credentials enabled, any non-empty login is accepted",
			zap.String("role", cfg.AuthDevRole),
		)
		return services.NewDevCredentials(catalog.Role(cfg.AuthDevRole))
	}
	return services.NewStoreCredentials(users, logger)
}

// ProvideAuthService creates the auth service
func ProvideAuthService(
	provider ports.CredentialsProvider,
	sessions *auth.SessionManager,
	users ports.UserRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) ports.AuthService {
	return services.NewAuthService(provider, sessions, users, publisher, metrics, logger)
}

// ProvideProductService creates the product service
func ProvideProductService(repo ports.ProductRepository, publisher ports.EventPublisher, metrics *observability.Metrics, logger *zap.Logger) ports.ProductService {
	return services.NewProductService(repo, publisher, metrics, logger)
}

// ProvideProviderService creates the provider service
func ProvideProviderService(repo ports.ProviderRepository, publisher ports.EventPublisher, metrics *observability.Metrics, logger *zap.Logger) ports.ProviderService {
	return services.NewProviderService(repo, publisher, metrics, logger)
}

// ProvideUserService creates the user service
func ProvideUserService(repo ports.UserRepository, publisher ports.EventPublisher, metrics *observability.Metrics, logger *zap.Logger) ports.UserService {
	return services.NewUserService(repo, publisher, metrics, logger)
}

// ProvideLogoService creates the logo service
func ProvideLogoService(repo ports.LogoRepository, publisher ports.EventPublisher, metrics *observability.Metrics, logger *zap.Logger) ports.LogoService {
	return services.NewLogoService(repo, publisher, metrics, logger)
}

// ProvideStatsService creates the stats service
func ProvideStatsService(
	users ports.UserRepository,
	products ports.ProductRepository,
	providers ports.ProviderRepository,
	logger *zap.Logger,
) ports.StatsService {
	return services.NewStatsService(users, products, providers, logger)
}

// ProvideTagService creates the tag service
func ProvideTagService(providers ports.ProviderRepository, products ports.ProductRepository) ports.TagService {
	return services.NewTagService(providers, products)
}

// ProvideDiagnosticsService creates the table diagnostics service
func ProvideDiagnosticsService(
	users ports.UserRepository,
	products ports.ProductRepository,
	providers ports.ProviderRepository,
	logos ports.LogoRepository,
) ports.DiagnosticsService {
	return services.NewDiagnosticsService(users, products, providers, logos)
}

// ProvideLoginLimiter creates the per-IP login limiter and sweeps idle keys every minute
func ProvideLoginLimiter(cfg *config.Config) (*auth.SlidingWindowLimiter, func()) {
	limiter := auth.NewSlidingWindowLimiter(cfg.LoginRateLimit, time.Minute)

	ticker := time.NewTicker(time.Minute)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				limiter.Sweep()
			case <-done:
				return
			}
		}
	}()

	return limiter, func() {
		ticker.Stop()
		close(done)
	}
}

// ProvideRouterOptions maps configuration onto the HTTP surface
func ProvideRouterOptions(cfg *config.Config) rest.Options {
	return rest.Options{
		EnableCORS:        cfg.EnableCORS,
		CORSOrigins:       cfg.CORSOrigins,
		EnableMetrics:     cfg.EnableMetrics,
		EnableTracing:     cfg.EnableTracing,
		EnableDebugRoutes: cfg.EnableDebugRoutes,
		StoreTimeout:      cfg.StoreTimeout,
		SessionCookie:     cfg.SessionCookie,
		SecureCookie:      !cfg.IsDevelopment(),
		LoginWindow:       time.Minute,
		ConfigSummary:     cfg.Summary(),
	}
}
