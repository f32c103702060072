package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	APIPort  string `mapstructure:"API_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// FlightSim API. A zero timeout means requests are never cut short.
	FlightAPIURL     string        `mapstructure:"FLIGHT_API_URL"`
	FlightAPITimeout time.Duration `mapstructure:"FLIGHT_API_TIMEOUT"`

	TemporalHost      string `mapstructure:"TEMPORAL_HOST"`
	TemporalNamespace string `mapstructure:"TEMPORAL_NAMESPACE"`
	TemporalTaskQueue string `mapstructure:"TEMPORAL_TASK_QUEUE"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Session storage: memory, redis or postgres.
	SessionStore   string        `mapstructure:"SESSION_STORE"`
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`
	SessionSweep   string        `mapstructure:"SESSION_SWEEP"`
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int           `mapstructure:"REDIS_SESSION_DB"`

	HandoffSecret string        `mapstructure:"HANDOFF_SECRET"`
	HandoffTTL    time.Duration `mapstructure:"HANDOFF_TTL"`

	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`
	DashboardRefresh  time.Duration `mapstructure:"DASHBOARD_REFRESH"`
	CORSOrigins       []string      `mapstructure:"CORS_ORIGINS"`

	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
}

const (
	SessionStoreMemory   = "memory"
	SessionStoreRedis    = "redis"
	SessionStorePostgres = "postgres"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("FLIGHT_API_URL", "http://localhost:8000")
	v.SetDefault("FLIGHT_API_TIMEOUT", "0s")
	v.SetDefault("TEMPORAL_HOST", "localhost:7233")
	v.SetDefault("TEMPORAL_NAMESPACE", "default")
	v.SetDefault("TEMPORAL_TASK_QUEUE", "flightsim-journey-queue")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SESSION_STORE", SessionStoreMemory)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_SWEEP", "@every 15m")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 0)
	v.SetDefault("HANDOFF_SECRET", "")
	v.SetDefault("HANDOFF_TTL", "30m")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("DASHBOARD_REFRESH", "60s")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
}

// Load reads config.yaml from . or ./config when present, then applies
// environment overrides and defaults.
func Load() (*Config, error) {
	return load(viper.New(), true)
}

func load(v *viper.Viper, readFile bool) (*Config, error) {
	if readFile {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.AutomaticEnv()
	setDefaults(v)

	if readFile {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.CORSOrigins = splitList(cfg.CORSOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// splitList accepts both a YAML list and a comma separated env value.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func (c *Config) Validate() error {
	if c.FlightAPIURL == "" {
		return errors.New("FLIGHT_API_URL is required")
	}
	if c.FlightAPITimeout < 0 {
		return errors.New("FLIGHT_API_TIMEOUT must not be negative")
	}
	switch c.SessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	case SessionStorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("SESSION_STORE=postgres needs DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", c.SessionStore)
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.HandoffTTL <= 0 {
		return errors.New("HANDOFF_TTL must be positive")
	}
	if c.IsProduction() && c.HandoffSecret == "" {
		return errors.New("HANDOFF_SECRET is required in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GoogleSignInEnabled reports whether Firebase credentials were configured
func (c *Config) GoogleSignInEnabled() bool {
	return c.FirebaseProjectID != ""
}
