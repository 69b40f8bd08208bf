package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/calumh/ghostsnake/internal/crypto"
	"github.com/calumh/ghostsnake/internal/dependencies/clock"
	"github.com/calumh/ghostsnake/internal/dependencies/random"
	"github.com/calumh/ghostsnake/internal/services/credential"
	"github.com/calumh/ghostsnake/internal/services/game"
	"github.com/calumh/ghostsnake/internal/services/leaderboard"
	"github.com/calumh/ghostsnake/internal/storage"
	filestorage "github.com/calumh/ghostsnake/internal/storage/file"
	"github.com/calumh/ghostsnake/internal/storage/memory"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Credentials *credential.Service
	Leaderboard *leaderboard.Service
	Game        *game.Engine
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("file" or "memory")
	// If empty, defaults to "file"
	StorageType string
	// DataDir is the directory for file storage (required for "file")
	DataDir string
	// Key is the process-wide symmetric key for credential encryption
	Key []byte
	// GameConfig holds game-loop parameters (optional)
	// Zero-valued fields fall back to game.DefaultConfig()
	GameConfig game.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeFile:
		if cfg.DataDir == "" {
			return nil, errors.New("DataDir required when StorageType is file")
		}
		fileStore, err := filestorage.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	default:
		return nil, errors.New("invalid StorageType: must be 'file' or 'memory'")
	}

	// KeyUnavailable surfaces here, before any service can run
	cipher, err := crypto.NewCipher(cfg.Key)
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, cipher, cfg.GameConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	cipher *crypto.Cipher,
	gameCfg game.Config,
	logger *slog.Logger,
) *App {
	credentialService := credential.New(store, cipher, clk, logger)
	leaderboardService := leaderboard.New(store, clk, logger)
	gameEngine := game.NewEngine(leaderboardService, clk, rnd, gameCfg, logger)

	return &App{
		Storage:     store,
		Clock:       clk,
		Random:      rnd,
		Credentials: credentialService,
		Leaderboard: leaderboardService,
		Game:        gameEngine,
	}
}
