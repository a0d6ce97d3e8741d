package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Ephemeris EphemerisConfig
	Engine    EngineConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// EphemerisConfig holds the upstream ephemeris service configuration. With
// Provider set to "static" the engine runs offline and no credentials are
// needed; with "http" all four connection fields are required.
type EphemerisConfig struct {
	Provider          string        `envconfig:"EPHEMERIS_PROVIDER" default:"http"`
	BaseURL           string        `envconfig:"EPHEMERIS_BASE_URL" default:""`
	TokenURL          string        `envconfig:"EPHEMERIS_TOKEN_URL" default:""`
	ClientID          string        `envconfig:"EPHEMERIS_CLIENT_ID" default:""`
	ClientSecret      string        `envconfig:"EPHEMERIS_CLIENT_SECRET" default:""`
	Timeout           time.Duration `envconfig:"EPHEMERIS_TIMEOUT" default:"10s"`
	RequestsPerSecond float64       `envconfig:"EPHEMERIS_RPS" default:"5"`
	TokenSkew         time.Duration `envconfig:"EPHEMERIS_TOKEN_SKEW" default:"30s"`
}

// EngineConfig holds calculation engine configuration.
type EngineConfig struct {
	LifePathMethod string `envconfig:"LIFE_PATH_METHOD" default:"component"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Ephemeris: EphemerisConfig{
			Provider:          "http",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 5,
			TokenSkew:         30 * time.Second,
		},
		Engine: EngineConfig{
			LifePathMethod: "component",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
