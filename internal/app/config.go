package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/team-alchemy-backend/internal/platform/envutil"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
)

const defaultConfigFile = "config.yaml"

type Config struct {
	AppName     string `yaml:"app_name"`
	AppVersion  string `yaml:"app_version"`
	Environment string `yaml:"environment"`
	Debug       bool   `yaml:"debug"`

	APIHost     string   `yaml:"api_host"`
	APIPort     int      `yaml:"api_port"`
	APIPrefix   string   `yaml:"api_prefix"`
	CORSOrigins []string `yaml:"cors_origins"`

	DatabaseURL string `yaml:"database_url"`
	RedisURL    string `yaml:"redis_url"`

	SecretKey      string        `yaml:"secret_key"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl"`

	LogMode string `yaml:"log_mode"`

	EnableShadowWork      bool          `yaml:"enable_shadow_work"`
	EnableRecommendations bool          `yaml:"enable_recommendations"`
	MaxRecommendations    int           `yaml:"max_recommendations"`
	AnalysisCacheTTL      time.Duration `yaml:"analysis_cache_ttl"`

	OtelEnabled bool `yaml:"otel_enabled"`
}

func DefaultConfig() Config {
	return Config{
		AppName:               "Team Alchemy",
		AppVersion:            "0.1.0",
		Environment:           "development",
		APIHost:               "0.0.0.0",
		APIPort:               8000,
		APIPrefix:             "/api/v1",
		CORSOrigins:           []string{"*"},
		DatabaseURL:           "sqlite://team_alchemy.db",
		SecretKey:             "change-me-in-production",
		AccessTokenTTL:        time.Hour,
		LogMode:               "development",
		EnableShadowWork:      true,
		EnableRecommendations: true,
		MaxRecommendations:    10,
		AnalysisCacheTTL:      10 * time.Minute,
	}
}

// LoadConfig layers the optional YAML file and then the environment over
// DefaultConfig. TEAM_ALCHEMY_CONFIG names the file; without it config.yaml
// is used when present.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := DefaultConfig()

	path := envutil.String("TEAM_ALCHEMY_CONFIG", "", log)
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if err := loadFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	} else if log != nil {
		log.Info("Config file loaded", "path", path)
	}

	applyEnv(&cfg, log)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, log *logger.Logger) {
	cfg.AppName = envutil.String("APP_NAME", cfg.AppName, log)
	cfg.AppVersion = envutil.String("APP_VERSION", cfg.AppVersion, log)
	cfg.Environment = envutil.String("ENVIRONMENT", cfg.Environment, log)
	cfg.Debug = envutil.Bool("DEBUG", cfg.Debug, log)

	cfg.APIHost = envutil.String("API_HOST", cfg.APIHost, log)
	cfg.APIPort = envutil.Int("API_PORT", cfg.APIPort, log)
	cfg.APIPrefix = envutil.String("API_PREFIX", cfg.APIPrefix, log)
	cfg.CORSOrigins = envutil.List("CORS_ORIGINS", cfg.CORSOrigins, log)

	cfg.DatabaseURL = envutil.String("DATABASE_URL", cfg.DatabaseURL, log)
	cfg.RedisURL = envutil.String("REDIS_URL", cfg.RedisURL, log)

	cfg.SecretKey = envutil.String("SECRET_KEY", cfg.SecretKey, log)
	cfg.AccessTokenTTL = envutil.Duration("ACCESS_TOKEN_TTL", cfg.AccessTokenTTL, log)

	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode, log)

	cfg.EnableShadowWork = envutil.Bool("ENABLE_SHADOW_WORK", cfg.EnableShadowWork, log)
	cfg.EnableRecommendations = envutil.Bool("ENABLE_RECOMMENDATIONS", cfg.EnableRecommendations, log)
	cfg.MaxRecommendations = envutil.Int("MAX_RECOMMENDATIONS", cfg.MaxRecommendations, log)
	cfg.AnalysisCacheTTL = envutil.Duration("ANALYSIS_CACHE_TTL", cfg.AnalysisCacheTTL, log)

	cfg.OtelEnabled = envutil.Bool("OTEL_ENABLED", cfg.OtelEnabled, log)
}

func (c Config) Validate() error {
	var problems []string
	if c.APIPort < 1 || c.APIPort > 65535 {
		problems = append(problems, fmt.Sprintf("api_port must be in 1..65535, got %d", c.APIPort))
	}
	if !strings.HasPrefix(c.APIPrefix, "/") {
		problems = append(problems, fmt.Sprintf("api_prefix must start with '/', got %q", c.APIPrefix))
	}
	if c.MaxRecommendations < 1 {
		problems = append(problems, fmt.Sprintf("max_recommendations must be at least 1, got %d", c.MaxRecommendations))
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		problems = append(problems, "database_url is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
