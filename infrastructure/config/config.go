package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage backends
const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

// API Gateway integration modes
const (
	GatewayModeREST = "rest"
	GatewayModeHTTP = "http"
)

// Config holds all application configuration
type Config struct {
	// Naming scheme: <application>-<environment>-<collection>
	Application string
	Environment string

	// Table names, derived from the naming scheme unless overridden
	SchedulesTable string
	AppsTable      string
	WavesTable     string

	// AWS configuration
	AWSRegion        string
	DynamoDBEndpoint string
	EventBusName     string
	MetricsNamespace string

	// Storage
	StorageBackend string
	SeedFile       string

	// Server configuration
	ServerAddress     string
	APIGatewayMode    string
	CORSAllowedOrigin string

	// Authentication for the local server
	JWTSecret string
	JWTIssuer string

	// Logging
	LogLevel string

	// Tuning and feature flags
	EnrichmentConcurrency int
	ReferenceCacheTTL     time.Duration // zero disables the read-path name cache
	EnableMetrics         bool
	EnableTracing         bool
	EnableCircuitBreaker  bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Application: getEnv("APPLICATION", getEnv("application", "")),
		Environment: getEnv("ENVIRONMENT", getEnv("environment", "development")),

		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		EventBusName:     getEnv("EVENT_BUS_NAME", ""),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "MigrationSchedules"),

		StorageBackend: getEnv("STORAGE_BACKEND", StorageDynamoDB),
		SeedFile:       getEnv("SEED_FILE", ""),

		ServerAddress:     getEnv("SERVER_ADDRESS", ":8080"),
		APIGatewayMode:    getEnv("API_GATEWAY_MODE", GatewayModeREST),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		EnrichmentConcurrency: getEnvInt("ENRICHMENT_CONCURRENCY", 8),
		ReferenceCacheTTL:     time.Duration(getEnvInt("REFERENCE_CACHE_TTL_SECONDS", 0)) * time.Second,
		EnableMetrics:         getEnvBool("ENABLE_METRICS", false),
		EnableTracing:         getEnvBool("ENABLE_TRACING", false),
		EnableCircuitBreaker:  getEnvBool("ENABLE_CIRCUIT_BREAKER", false),
	}

	cfg.SchedulesTable = getEnv("SCHEDULES_TABLE", cfg.tableName("migration-schedules"))
	cfg.AppsTable = getEnv("APPS_TABLE", cfg.tableName("apps"))
	cfg.WavesTable = getEnv("WAVES_TABLE", cfg.tableName("waves"))

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) tableName(collection string) string {
	if c.Application == "" {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", c.Application, c.Environment, collection)
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageDynamoDB:
		if c.SchedulesTable == "" || c.AppsTable == "" || c.WavesTable == "" {
			return fmt.Errorf("APPLICATION or SCHEDULES_TABLE, APPS_TABLE and WAVES_TABLE are required")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	if c.APIGatewayMode != GatewayModeREST && c.APIGatewayMode != GatewayModeHTTP {
		return fmt.Errorf("unknown API_GATEWAY_MODE %q", c.APIGatewayMode)
	}

	if c.EnrichmentConcurrency < 1 {
		return fmt.Errorf("ENRICHMENT_CONCURRENCY must be at least 1")
	}

	if c.ReferenceCacheTTL < 0 {
		return fmt.Errorf("REFERENCE_CACHE_TTL_SECONDS must not be negative")
	}

	return nil
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
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
