package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every environment variable name
const envPrefix = "GHOSTSNAKE_"

// Config contains application configuration parameters.
type Config struct {
	LogLevel int    `env:"LOG_LEVEL" envDefault:"0"`
	DataDir  string `env:"DATA_DIR"`
	Storage  string `env:"STORAGE" envDefault:"file"`
	Game     Game   `envPrefix:"GAME_"`
	UI       UI     `envPrefix:"UI_"`
}

// Game contains game-loop parameters.
type Game struct {
	GridWidth  int `env:"GRID_WIDTH" envDefault:"30"`
	GridHeight int `env:"GRID_HEIGHT" envDefault:"20"`
	TickMs     int `env:"TICK_MS" envDefault:"90"`
}

// TickInterval returns the wall-clock interval between game ticks.
func (g Game) TickInterval() time.Duration {
	return time.Duration(g.TickMs) * time.Millisecond
}

// UI contains window rendering parameters.
type UI struct {
	CellSize int `env:"CELL_SIZE" envDefault:"20"`
}

// New loads configuration from GHOSTSNAKE_-prefixed environment variables.
// DataDir defaults to ~/.ghostsnake when unset.
func New() (*Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			cfg.DataDir = ".ghostsnake"
		} else {
			cfg.DataDir = filepath.Join(home, ".ghostsnake")
		}
	}

	return &cfg, nil
}
