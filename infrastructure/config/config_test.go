package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DerivesTableNames(t *testing.T) {
	t.Setenv("APPLICATION", "cmf")
	t.Setenv("ENVIRONMENT", "dev")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "cmf-dev-migration-schedules", cfg.SchedulesTable)
	assert.Equal(t, "cmf-dev-apps", cfg.AppsTable)
	assert.Equal(t, "cmf-dev-waves", cfg.WavesTable)
	assert.Equal(t, StorageDynamoDB, cfg.StorageBackend)
	assert.Equal(t, GatewayModeREST, cfg.APIGatewayMode)
	assert.Equal(t, 8, cfg.EnrichmentConcurrency)
	assert.Equal(t, "*", cfg.CORSAllowedOrigin)
}

func TestLoadConfig_LowercaseNamingVariables(t *testing.T) {
	t.Setenv("APPLICATION", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("application", "cmf")
	t.Setenv("environment", "prod")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "cmf-prod-waves", cfg.WavesTable)
	assert.Equal(t, "prod", cfg.Environment)
}

func TestLoadConfig_TableOverrides(t *testing.T) {
	t.Setenv("APPLICATION", "cmf")
	t.Setenv("SCHEDULES_TABLE", "custom-schedules")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "custom-schedules", cfg.SchedulesTable)
	assert.Equal(t, "cmf-development-apps", cfg.AppsTable)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "no tables", env: map[string]string{"APPLICATION": "", "application": ""}},
		{name: "unknown backend", env: map[string]string{"APPLICATION": "cmf", "STORAGE_BACKEND": "redis"}},
		{name: "unknown gateway mode", env: map[string]string{"APPLICATION": "cmf", "API_GATEWAY_MODE": "websocket"}},
		{name: "zero concurrency", env: map[string]string{"APPLICATION": "cmf", "ENRICHMENT_CONCURRENCY": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MemoryBackendNeedsNoTables(t *testing.T) {
	t.Setenv("APPLICATION", "")
	t.Setenv("application", "")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("ENABLE_CIRCUIT_BREAKER", "true")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.True(t, cfg.EnableCircuitBreaker)
}

func TestLoadConfig_ReferenceCacheTTL(t *testing.T) {
	t.Setenv("APPLICATION", "cmf")
	t.Setenv("REFERENCE_CACHE_TTL_SECONDS", "30")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.ReferenceCacheTTL)

	t.Setenv("REFERENCE_CACHE_TTL_SECONDS", "-1")
	_, err = LoadConfig()
	assert.Error(t, err)
}
