package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antwalk/config"
	"github.com/katalvlaran/antwalk/logging"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "antwalk",
		Short: "Stochastic ant walk on a grid graph",
		Long: `antwalk simulates a single ant walking an 8-connected grid. Each move is
drawn by roulette from pheromone/cost likelihoods; dead ends are abandoned
and the ant backtracks along its own path.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config (defaults when empty)")
	rootCmd.PersistentFlags().String("log-level", "", "Override log.level (info, debug, trace, warn, error)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newWatchCmd(),
		newProbeCmd(),
	)

	return rootCmd
}

// loadConfig reads --config and returns a private copy of the result so
// that flag overrides never leak into the loader.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	applyLogLevel(cmd, cfg)

	return cfg, nil
}

func applyLogLevel(cmd *cobra.Command, cfg *config.Config) {
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return logging.NewLogger(cfg.Log.Level, w)
}
