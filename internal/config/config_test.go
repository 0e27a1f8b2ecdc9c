package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "memory", cfg.StorageType)
	assert.Equal(t, 24*time.Hour, cfg.SessionDuration)
	assert.Equal(t, 800*time.Millisecond, cfg.LoginLatency)
	assert.Equal(t, time.Second, cfg.SignupLatency)
	assert.True(t, cfg.SeedDemoData)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ARENA_PORT", "9090")
	t.Setenv("ARENA_STORAGE", "redis")
	t.Setenv("ARENA_REDIS_URL", "redis://cache:6379/2")
	t.Setenv("ARENA_LOGIN_LATENCY", "0")
	t.Setenv("ARENA_SEED_DEMO_DATA", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "redis", cfg.StorageType)
	assert.Equal(t, "redis://cache:6379/2", cfg.RedisURL)
	assert.Equal(t, time.Duration(0), cfg.LoginLatency)
	assert.False(t, cfg.SeedDemoData)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Port = -1 },
			wantErr: "invalid port",
		},
		{
			name:    "bad storage type",
			mutate:  func(c *Config) { c.StorageType = "postgres" },
			wantErr: "invalid storage type",
		},
		{
			name:    "zero session duration",
			mutate:  func(c *Config) { c.SessionDuration = 0 },
			wantErr: "session duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
