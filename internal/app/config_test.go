package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
)

var configEnv = []string{
	"TEAM_ALCHEMY_CONFIG", "APP_NAME", "APP_VERSION", "ENVIRONMENT", "DEBUG",
	"API_HOST", "API_PORT", "API_PREFIX", "CORS_ORIGINS", "DATABASE_URL", "REDIS_URL",
	"SECRET_KEY", "ACCESS_TOKEN_TTL", "LOG_MODE", "ENABLE_SHADOW_WORK",
	"ENABLE_RECOMMENDATIONS", "MAX_RECOMMENDATIONS", "ANALYSIS_CACHE_TTL", "OTEL_ENABLED",
}

// clearEnv blanks every variable LoadConfig reads; blank counts as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnv {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig(logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alchemy.yaml")
	raw := []byte(`
app_name: Alchemy Staging
environment: production
api_port: 9100
cors_origins:
  - https://app.example.com
database_url: sqlite://staging.db
max_recommendations: 4
access_token_ttl: 30m
enable_shadow_work: false
`)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	clearEnv(t)
	t.Setenv("TEAM_ALCHEMY_CONFIG", path)
	t.Setenv("API_PORT", "9200")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("ANALYSIS_CACHE_TTL", "120")

	cfg, err := LoadConfig(logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "Alchemy Staging", cfg.AppName)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9200, cfg.APIPort)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "sqlite://staging.db", cfg.DatabaseURL)
	assert.Equal(t, 4, cfg.MaxRecommendations)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 2*time.Minute, cfg.AnalysisCacheTTL)
	assert.False(t, cfg.EnableShadowWork)
	assert.True(t, cfg.EnableRecommendations)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEAM_ALCHEMY_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := LoadConfig(logger.Nop())
	require.Error(t, err)
}

func TestLoadConfigRejectsInvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_PREFIX", "api")
	_, err := LoadConfig(logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_prefix must start with '/'")
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIPort = 0
	cfg.MaxRecommendations = 0
	cfg.DatabaseURL = " "
	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t,
		"invalid config: api_port must be in 1..65535, got 0; max_recommendations must be at least 1, got 0; database_url is required",
		err.Error())
}
