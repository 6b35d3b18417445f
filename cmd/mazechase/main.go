// mazechase is a single-player maze chase game for the terminal.
//
// Usage:
//
//	mazechase play      - Play a game
//	mazechase board     - Print the starting board and glyph legend
//	mazechase config    - Print the effective rules as YAML
//
// Global flags:
//
//	--config <path>       - Rules YAML (default: search ~/.mazechase/configs, ./configs)
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--seed <value>        - RNG seed for reproducible adversary moves
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - collect every pickup before the adversaries catch you",
	Long: `Maze Chase is a terminal maze game. Move through a fixed 15x13 maze,
eat every pickup and avoid the four roaming adversaries. A power pickup
lets you catch them for a while.

Available commands:
  play     - Play a game
  board    - Print the starting board
  config   - Print the effective rules

Examples:
  mazechase play
  mazechase play --difficulty hard --seed 42
  mazechase play --config ./my-rules.yaml --log-file chase.log --log-level debug
  mazechase config --difficulty easy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the rules from --config and --difficulty.
func loadConfig() (config.ChaseConfig, error) {
	cfg, err := config.LoadChase(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyChasePreset(&cfg, preset)

	return cfg, cfg.Validate()
}

// newLogger builds the logger from --log-file and --log-level.
// The returned closer releases the log file, if any.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazechase",
		Level:           level,
	})
	return logger, closer, nil
}
