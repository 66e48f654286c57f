package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Auth modes accepted by AUTH_MODE.
const (
	AuthModeStore       = "store"
	AuthModeDevelopment = "development"
)

// ProfileLocal targets DynamoDB Local and the local frontend.
const ProfileLocal = "local"

var devRoles = []string{"admin", "ejecutivo", "cliente"}

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string
	LogLevel      string
	StoreTimeout  time.Duration

	// AWS configuration
	AWSRegion          string
	DynamoDBEndpoint   string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSMaxAttempts     int
	EventBusName       string

	// Tables
	TablePrefix      string
	UsersTable       string
	ProductsTable    string
	ProvidersTable   string
	LogosTable       string
	UsersEmailIndex  string
	LogosClientIndex string

	// Authentication
	AuthSecret     string
	AuthIssuer     string
	AuthAudience   []string
	SessionTTL     time.Duration
	AuthMode       string
	AuthDevRole    string
	SessionCookie  string
	LoginRateLimit int

	// Profiles
	ProfileName string
	Profile     Profile

	// Lambda configuration
	IsLambda bool

	// Feature flags
	EnableMetrics     bool
	EnableTracing     bool
	OTLPEndpoint      string
	EnableCORS        bool
	CORSOrigins       []string
	EnableDebugRoutes bool
}

// LoadConfig loads configuration from an optional .env file and the environment.
// The selected profile fills the endpoint and table prefix when they are not set explicitly.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	profiles, err := LoadProfiles(os.Getenv("PROFILES_FILE"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StoreTimeout:  getEnvDuration("STORE_TIMEOUT", 10*time.Second),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("CATALOG_AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("CATALOG_AWS_SECRET_ACCESS_KEY", ""),
		AWSMaxAttempts:     getEnvInt("AWS_MAX_ATTEMPTS", 3),
		EventBusName:       getEnv("EVENT_BUS_NAME", ""),

		UsersEmailIndex:  getEnv("USERS_EMAIL_INDEX", ""),
		LogosClientIndex: getEnv("LOGOS_CLIENT_INDEX", ""),

		AuthSecret:     getEnv("AUTH_SECRET", getEnv("JWT_SECRET", "")),
		AuthIssuer:     getEnv("AUTH_ISSUER", "catalog-admin"),
		AuthAudience:   getEnvList("AUTH_AUDIENCE"),
		SessionTTL:     getEnvDuration("SESSION_TTL", 8*time.Hour),
		AuthMode:       getEnv("AUTH_MODE", AuthModeStore),
		AuthDevRole:    getEnv("AUTH_DEV_ROLE", "admin"),
		SessionCookie:  getEnv("SESSION_COOKIE", "catalog_session"),
		LoginRateLimit: getEnvInt("LOGIN_RATE_LIMIT", 10),

		ProfileName: getEnv("APP_PROFILE", ProfileLocal),

		IsLambda: getEnvBool("IS_LAMBDA", os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""),

		EnableMetrics:     getEnvBool("ENABLE_METRICS", true),
		EnableTracing:     getEnvBool("ENABLE_TRACING", false),
		OTLPEndpoint:      getEnv("OTLP_ENDPOINT", ""),
		EnableCORS:        getEnvBool("ENABLE_CORS", true),
		CORSOrigins:       getEnvList("CORS_ORIGINS"),
		EnableDebugRoutes: getEnvBool("ENABLE_DEBUG_ROUTES", false),
	}

	profile, ok := profiles[cfg.ProfileName]
	if !ok {
		return nil, fmt.Errorf("unknown APP_PROFILE %q", cfg.ProfileName)
	}
	cfg.Profile = profile

	cfg.DynamoDBEndpoint = getEnv("DYNAMODB_ENDPOINT", profile.DynamoDBEndpoint)
	cfg.TablePrefix = getEnv("TABLE_PREFIX", profile.TablePrefix)
	cfg.UsersTable = getEnv("USERS_TABLE", cfg.TablePrefix+"users")
	cfg.ProductsTable = getEnv("PRODUCTS_TABLE", cfg.TablePrefix+"products")
	cfg.ProvidersTable = getEnv("PROVIDERS_TABLE", cfg.TablePrefix+"providers")
	cfg.LogosTable = getEnv("LOGOS_TABLE", cfg.TablePrefix+"logos")

	if len(cfg.CORSOrigins) == 0 && profile.BaseURL != "" {
		cfg.CORSOrigins = []string{profile.BaseURL}
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.AuthMode {
	case AuthModeStore, AuthModeDevelopment:
	default:
		return fmt.Errorf("AUTH_MODE must be %q or %q, got %q", AuthModeStore, AuthModeDevelopment, c.AuthMode)
	}
	if c.AuthMode == AuthModeDevelopment && !contains(devRoles, c.AuthDevRole) {
		return fmt.Errorf("AUTH_DEV_ROLE must be one of %s", strings.Join(devRoles, ", "))
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be positive")
	}
	if c.LoginRateLimit <= 0 {
		return fmt.Errorf("LOGIN_RATE_LIMIT must be positive")
	}

	if c.IsProduction() {
		if c.AuthSecret == "" {
			return fmt.Errorf("AUTH_SECRET is required in production")
		}
		if c.AuthMode == AuthModeDevelopment {
			return fmt.Errorf("AUTH_MODE=development is not allowed in production")
		}
		if c.ProfileName == ProfileLocal {
			return fmt.Errorf("APP_PROFILE=%s is not allowed in production", ProfileLocal)
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Summary returns the non-secret settings shown by the debug config route.
func (c *Config) Summary() map[string]interface{} {
	return map[string]interface{}{
		"environment":      c.Environment,
		"profile":          c.ProfileName,
		"baseUrl":          c.Profile.BaseURL,
		"callbackUrl":      c.Profile.CallbackURL,
		"region":           c.AWSRegion,
		"dynamodbEndpoint": c.DynamoDBEndpoint,
		"tables": map[string]string{
			"users":     c.UsersTable,
			"products":  c.ProductsTable,
			"providers": c.ProvidersTable,
			"logos":     c.LogosTable,
		},
		"usersEmailIndex":   c.UsersEmailIndex,
		"logosClientIndex":  c.LogosClientIndex,
		"authMode":          c.AuthMode,
		"authSecretSet":     c.AuthSecret != "",
		"staticCredentials": c.AWSAccessKeyID != "",
		"eventBus":          c.EventBusName,
		"storeTimeout":      c.StoreTimeout.String(),
		"metrics":           c.EnableMetrics,
		"tracing":           c.EnableTracing,
		"lambda":            c.IsLambda,
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("90s") or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
