package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calumh/ghostsnake/internal/config"
	"github.com/calumh/ghostsnake/internal/factory"
	"github.com/calumh/ghostsnake/internal/keystore"
	"github.com/calumh/ghostsnake/internal/logger"
	"github.com/calumh/ghostsnake/internal/services/game"
)

// keyFile is the name of the symmetric key file inside the data dir
const keyFile = "secret.key"

var (
	cfg *config.Config
	log *logger.Logger

	flagDataDir string
	flagStorage string
	flagOutput  string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ghostsnake",
		Short: "Snake behind an encrypted login",
		Long: `ghostsnake is a desktop snake game with per-user score tracking.

Accounts live in an encrypted local credential store; the first registered
user becomes the admin and gates further registration. Verified users play
in a raylib window and finished games land on a persistent leaderboard.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.New()
			if err != nil {
				return err
			}

			// Flags override environment
			if flagDataDir != "" {
				cfg.DataDir = flagDataDir
			}
			if flagStorage != "" {
				cfg.Storage = flagStorage
			}

			log = logger.New(cfg.LogLevel)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (env: GHOSTSNAKE_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "Storage backend: file, memory (env: GHOSTSNAKE_STORAGE)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newUserCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// buildApp loads the key and wires the application from the resolved config.
// A missing or unreadable key file fails here, before any operation runs.
func buildApp() (*factory.App, error) {
	key, err := keystore.LoadOrCreate(filepath.Join(cfg.DataDir, keyFile))
	if err != nil {
		return nil, err
	}

	return factory.New(factory.Config{
		StorageType: cfg.Storage,
		DataDir:     cfg.DataDir,
		Key:         key,
		GameConfig: game.Config{
			GridWidth:    cfg.Game.GridWidth,
			GridHeight:   cfg.Game.GridHeight,
			TickInterval: cfg.Game.TickInterval(),
		},
		Logger: log.Logger,
	})
}
