package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/games/chase"
	"github.com/vovakirdan/tui-mazechase/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Maze Chase.

Controls:
  W/A/S/D or arrows - Move
  P/Esc             - Pause
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5 lives, 30-tick power mode, slower ticks
  normal - Rules from the config file
  hard   - 2 lives, 12-tick power mode, faster ticks

Examples:
  mazechase play
  mazechase play --difficulty easy
  mazechase play --seed 42 --log-file chase.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := newLogger()
	if err != nil {
		return err
	}
	defer logFile.Close()

	game, err := chase.New(cfg)
	if err != nil {
		return err
	}
	game.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: cfg.TickInterval(),
		Seed:         flagSeed,
	}
	logger.Info("starting game", "difficulty", flagDifficulty, "lives", cfg.Player.Lives, "tick", rc.TickInterval)

	state, err := tui.Run(game, rc, logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, game.Frame())
	fmt.Fprintln(out, chase.ResultMessage(state.Won))
	return nil
}
