package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all server configuration parsed from environment variables.
type Config struct {
	// Server
	Host string `env:"ARENA_HOST" envDefault:""`
	Port int    `env:"ARENA_PORT" envDefault:"8080"`

	// Storage backend: "memory" or "redis"
	StorageType string `env:"ARENA_STORAGE" envDefault:"memory"`
	RedisURL    string `env:"ARENA_REDIS_URL" envDefault:"redis://localhost:6379"`

	// Sessions
	SessionDuration time.Duration `env:"ARENA_SESSION_DURATION" envDefault:"24h"`

	// Simulated operation latency, matching the feel of the original
	// frontend prototype. Set to 0 to disable.
	LoginLatency  time.Duration `env:"ARENA_LOGIN_LATENCY" envDefault:"800ms"`
	SignupLatency time.Duration `env:"ARENA_SIGNUP_LATENCY" envDefault:"1s"`

	// Demo data
	SeedDemoData bool `env:"ARENA_SEED_DEMO_DATA" envDefault:"true"`

	// Logging: "debug", "info", "warn" or "error"
	LogLevel string `env:"ARENA_LOG_LEVEL" envDefault:"info"`
}

// Load parses environment variables into a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks for configuration values that cannot be served.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.StorageType != "memory" && c.StorageType != "redis" {
		return fmt.Errorf("invalid storage type %q: must be memory or redis", c.StorageType)
	}
	if c.SessionDuration <= 0 {
		return fmt.Errorf("session duration must be positive")
	}
	return nil
}
