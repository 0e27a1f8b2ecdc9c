package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/arenahq/arena/internal/api/sse"
	"github.com/arenahq/arena/internal/dependencies/clock"
	"github.com/arenahq/arena/internal/services/auth"
	"github.com/arenahq/arena/internal/services/directory"
	"github.com/arenahq/arena/internal/services/game"
	"github.com/arenahq/arena/internal/services/tournament"
	"github.com/arenahq/arena/internal/storage"
	"github.com/arenahq/arena/internal/storage/memory"
	redisstorage "github.com/arenahq/arena/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	DirectoryService  *directory.Service
	AuthService       *auth.Service
	GameService       *game.Service
	TournamentService *tournament.Service
	HubManager        *sse.HubManager
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clock.New(), authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, authCfg auth.Config, logger *slog.Logger) *App {
	directoryService := directory.New(store, clk)
	authService := auth.New(store, directoryService, clk, authCfg)
	gameService := game.New(store, clk)
	tournamentService := tournament.New(store, clk)
	hubManager := sse.NewHubManager(logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		DirectoryService:  directoryService,
		AuthService:       authService,
		GameService:       gameService,
		TournamentService: tournamentService,
		HubManager:        hubManager,
	}
}

// SeedDemoData loads the demo identities, game catalog and tournaments.
// Idempotent: records already present are left alone.
func (a *App) SeedDemoData(ctx context.Context) error {
	if err := a.DirectoryService.SeedDemoIdentities(ctx); err != nil {
		return err
	}
	if err := a.GameService.SeedDemoCatalog(ctx); err != nil {
		return err
	}
	return a.TournamentService.SeedDemoTournaments(ctx)
}
