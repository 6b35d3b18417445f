package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/games/chase"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the starting board and glyph legend",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := chase.New(cfg)
	if err != nil {
		return err
	}
	game.Reset(core.RuntimeConfig{Seed: flagSeed})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, game.Frame())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Legend:")
	fmt.Fprintf(out, "  %c  wall\n", chase.GlyphWall)
	fmt.Fprintf(out, "  %c  pickup (%d points)\n", chase.GlyphPickup, cfg.Scoring.Pickup)
	fmt.Fprintf(out, "  %c  power pickup (%d points, %d ticks of power mode)\n", chase.GlyphPower, cfg.Scoring.PowerPickup, cfg.Power.DurationTicks)
	fmt.Fprintf(out, "  %c  player\n", chase.GlyphPlayer)
	fmt.Fprintf(out, "  %c  adversary (%d points when caught in power mode)\n", chase.GlyphAdversary, cfg.Scoring.Catch)
	return nil
}
