package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catalog-admin/application/services"
	"catalog-admin/infrastructure/config"
	"catalog-admin/infrastructure/messaging/eventbridge"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:        "development",
		LogLevel:           "info",
		AWSRegion:          "us-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		AWSMaxAttempts:     2,
		DynamoDBEndpoint:   "http://localhost:8000",
		UsersTable:         "local-users",
		ProductsTable:      "local-products",
		ProvidersTable:     "local-providers",
		LogosTable:         "local-logos",
		AuthMode:           config.AuthModeStore,
		AuthDevRole:        "admin",
		AuthIssuer:         "catalog-admin",
		SessionTTL:         time.Hour,
		SessionCookie:      "catalog_session",
		StoreTimeout:       time.Second,
		LoginRateLimit:     5,
		EnableMetrics:      true,
	}
}

func TestInitializeContainer(t *testing.T) {
	container, cleanup, err := InitializeContainer(context.Background(), testConfig())
	require.NoError(t, err)
	defer cleanup()

	assert.NotNil(t, container.Logger)
	assert.NotNil(t, container.Metrics)
	assert.NotNil(t, container.Router.Setup())
}

func TestProvideCredentialsProvider(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, services.AuthModeStore, ProvideCredentialsProvider(cfg, nil, zap.NewNop()).Mode())

	cfg.AuthMode = config.AuthModeDevelopment
	assert.Equal(t, services.AuthModeDevelopment, ProvideCredentialsProvider(cfg, nil, zap.NewNop()).Mode())
}

func TestProvideEventPublisher_NoBus(t *testing.T) {
	cfg := testConfig()
	awsCfg, err := ProvideAWSConfig(context.Background(), cfg)
	require.NoError(t, err)

	assert.IsType(t, eventbridge.NoopPublisher{}, ProvideEventPublisher(awsCfg, cfg, zap.NewNop()))

	cfg.EventBusName = "catalog-bus"
	assert.IsType(t, &eventbridge.Publisher{}, ProvideEventPublisher(awsCfg, cfg, zap.NewNop()))
}

func TestProvideSessionManager_RandomSecretOutsideProduction(t *testing.T) {
	sessions, err := ProvideSessionManager(testConfig(), zap.NewNop())
	require.NoError(t, err)

	token, _, err := sessions.Issue("u-1", "a@b.co", "A", []string{"admin"})
	require.NoError(t, err)
	claims, err := sessions.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
}
