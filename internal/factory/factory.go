package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/azulboard/internal/api/stream"
	"github.com/mcoot/azulboard/internal/dependencies/clock"
	"github.com/mcoot/azulboard/internal/dependencies/random"
	"github.com/mcoot/azulboard/internal/services/finish"
	"github.com/mcoot/azulboard/internal/services/scoring"
	"github.com/mcoot/azulboard/internal/services/session"
	"github.com/mcoot/azulboard/internal/storage"
	"github.com/mcoot/azulboard/internal/storage/memory"
	redisstorage "github.com/mcoot/azulboard/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage     storage.Storage
	StorageType string

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Board collaborators
	GameFinished finish.RowCompletedPolicy
	FinalPoints  *scoring.WallCalculation

	// Services
	SessionController *session.Controller

	// Board event streams
	HubManager  *stream.HubManager
	Broadcaster *stream.Broadcaster
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
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

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

	app := newWithDependencies(store, clock.New(), random.New(), logger)
	app.StorageType = storageType
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	gameFinished := finish.New()
	finalPoints := scoring.New()
	sessionController := session.NewController(
		store,
		gameFinished,
		scoring.NewFinalPointsCalculation(finalPoints),
		clk,
		rnd,
		logger,
	)

	hubManager := stream.NewHubManager(logger)
	broadcaster := stream.NewBroadcaster(hubManager, logger)
	sessionController.SetPublisher(broadcaster)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		GameFinished:      gameFinished,
		FinalPoints:       finalPoints,
		SessionController: sessionController,
		HubManager:        hubManager,
		Broadcaster:       broadcaster,
	}
}

// Close releases storage connections held by the app
func (a *App) Close() error {
	a.HubManager.Close()
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
