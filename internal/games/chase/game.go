// Package chase adapts the maze chase simulation to the platform: it maps
// input frames to moves, owns the welcome and pause states, and draws the
// board into a core.Screen.
package chase

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mazechase/internal/config"
	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/games/chase/sim"
)

// ID is the game identifier.
const ID = "chase"

// Game implements the maze chase game.
type Game struct {
	cfg    config.ChaseConfig
	layout sim.Layout
	logger *log.Logger

	sim  *sim.Sim
	rng  *rand.Rand
	last sim.Outcome

	started bool
	paused  bool
}

// New creates a game on the built-in maze.
// It fails if the config or the layout is invalid.
func New(cfg config.ChaseConfig) (*Game, error) {
	return NewWithLayout(cfg, sim.DefaultLayout())
}

// NewWithLayout creates a game on a custom layout.
func NewWithLayout(cfg config.ChaseConfig, layout sim.Layout) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := sim.ValidateLayout(layout); err != nil {
		return nil, fmt.Errorf("chase: malformed layout: %w", err)
	}
	return &Game{
		cfg:    cfg,
		layout: layout,
		logger: log.New(io.Discard),
	}, nil
}

// Rules converts a config to simulation rules.
func Rules(cfg config.ChaseConfig) sim.Rules {
	return sim.Rules{
		PickupPoints: cfg.Scoring.Pickup,
		PowerPoints:  cfg.Scoring.PowerPickup,
		CatchPoints:  cfg.Scoring.Catch,
		PowerTicks:   cfg.Power.DurationTicks,
		Lives:        cfg.Player.Lives,
	}
}

// SetLogger routes tick events to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Chase"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	s, err := sim.New(g.layout, Rules(g.cfg), g.rng)
	if err != nil {
		// The layout was validated in NewWithLayout.
		panic(fmt.Sprintf("chase: %v", err))
	}
	g.sim = s
	g.last = sim.Outcome{}
	g.started = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if !g.started {
		if input.Has(core.ActionStart) {
			g.started = true
			g.logger.Debug("game started", "lives", g.sim.State().Lives)
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused || g.sim.State().GameOver {
		return core.StepResult{State: g.State()}
	}

	g.last = g.sim.Tick(dirFor(input))
	g.logOutcome(g.last)

	return core.StepResult{State: g.State()}
}

// dirFor picks the movement direction from an input frame.
func dirFor(input core.InputFrame) sim.Dir {
	switch {
	case input.Has(core.ActionUp):
		return sim.DirUp
	case input.Has(core.ActionDown):
		return sim.DirDown
	case input.Has(core.ActionLeft):
		return sim.DirLeft
	case input.Has(core.ActionRight):
		return sim.DirRight
	}
	return sim.DirNone
}

func (g *Game) logOutcome(out sim.Outcome) {
	st := g.sim.State()
	tick := g.sim.Ticks()
	switch out.Consumed {
	case sim.ConsumedPickup:
		g.logger.Debug("pickup eaten", "tick", tick, "score", st.Score)
	case sim.ConsumedPower:
		g.logger.Debug("power mode on", "tick", tick, "timer", st.PowerTimer)
	}
	if out.Caught > 0 {
		g.logger.Debug("adversary caught", "tick", tick, "count", out.Caught, "score", st.Score)
	}
	if out.LivesLost > 0 {
		g.logger.Debug("life lost", "tick", tick, "lives", st.Lives)
	}
	if out.PowerEnded {
		g.logger.Debug("power mode off", "tick", tick)
	}
	if out.Won || out.Lost {
		g.logger.Info("game over", "phase", g.sim.Phase(), "score", st.Score, "ticks", tick)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.sim.State()
	return core.GameState{
		Score:    st.Score,
		Lives:    st.Lives,
		GameOver: st.GameOver,
		Won:      st.Won,
		Paused:   g.paused,
		Started:  g.started,
	}
}

// LastOutcome returns what happened on the most recent tick.
func (g *Game) LastOutcome() sim.Outcome {
	return g.last
}

// Snapshot returns the simulation snapshot for determinism verification.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}

// ResultMessage is the line printed when the program exits.
func ResultMessage(won bool) string {
	if won {
		return "Game Over! You Won!"
	}
	return "Game Over! Try Again!"
}
