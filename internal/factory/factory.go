package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/game2048/internal/dependencies/clock"
	"github.com/mcoot/game2048/internal/dependencies/random"
	"github.com/mcoot/game2048/internal/services/bot"
	"github.com/mcoot/game2048/internal/services/grid"
	"github.com/mcoot/game2048/internal/services/history"
	"github.com/mcoot/game2048/internal/services/session"
	"github.com/mcoot/game2048/internal/storage"
	"github.com/mcoot/game2048/internal/storage/memory"
	redisstorage "github.com/mcoot/game2048/internal/storage/redis"
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
	// Random drives tile spawns and bot choices
	Random random.Random
	// IDRandom generates record IDs, kept apart so recording never shifts a seeded game
	IDRandom random.Random

	Logger *slog.Logger

	// Services
	HistoryService *history.Service

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed makes gameplay reproducible (optional)
	Seed *uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var (
		store  storage.Storage
		closer io.Closer
	)
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
		closer = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	idRnd := random.New()
	var rnd random.Random = idRnd
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	app := newWithDependencies(store, clk, rnd, idRnd, logger)
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd, idRnd random.Random, logger *slog.Logger) *App {
	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		IDRandom:       idRnd,
		Logger:         logger,
		HistoryService: history.New(store, idRnd, logger),
	}
}

// NewEngine creates a grid engine using the app's randomness
func (a *App) NewEngine(cfg grid.Config) (*grid.Engine, error) {
	return grid.New(cfg, a.Random, a.Logger)
}

// NewSession creates a session loop that records finished games into history
func (a *App) NewSession(engine grid.EngineInterface, in session.Input, renderer session.Renderer, opts session.Options) *session.Loop {
	return session.NewLoop(engine, in, renderer, a.HistoryService, a.Clock, a.Logger, opts)
}

// NewBot creates a bot player for engine using the named strategy
func (a *App) NewBot(engine grid.EngineInterface, strategy string, maxMoves int) (*bot.Player, error) {
	st, err := bot.NewStrategy(strategy, a.Random)
	if err != nil {
		return nil, err
	}
	return bot.NewPlayer(engine, st, maxMoves, a.Logger), nil
}

// Close releases the storage connection, if any
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
