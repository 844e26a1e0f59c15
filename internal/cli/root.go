package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

var (
	configPath string
	conf       *config.Config
	logger     *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe in the terminal",
		Long: `tictactoe plays 3x3 tic-tac-toe on the console against an unbeatable
minimax computer, a random computer, or a second human.

It can also solve a single position and print the best move.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if conf, err = config.Load(configPath); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logger = initLogger(conf, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yml", "Config file path")

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSolveCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
