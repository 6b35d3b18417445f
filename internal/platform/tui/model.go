package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mazechase/internal/core"
)

// Model is the Bubble Tea model that drives a game at a fixed tick rate.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	queue     *core.KeyQueue
	logger    *log.Logger
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Reset here rather than in Init so the first key sees a valid state.
	game.Reset(cfg)
	logger.Debug("game reset", "game", game.ID(), "seed", cfg.Seed, "tick", cfg.TickInterval)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 0)),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		queue:     core.NewKeyQueue(core.DefaultKeyQueueSize),
		logger:    logger,
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next tick. It never blocks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == core.ActionQuit {
		m.logger.Info("quit requested", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	// Any key leaves the welcome screen.
	if !m.gameState.Started {
		if m.queue.Len() == 0 {
			m.queue.Push(core.ActionStart)
		}
		return m, nil
	}

	// Moves pressed while paused are discarded rather than replayed on resume.
	if action == core.ActionNone || (m.gameState.Paused && action.IsMove()) {
		return m, nil
	}
	if !m.queue.Push(action) {
		m.logger.Debug("key dropped", "action", action)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs exactly one simulation step with at most one queued action.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	input := core.NewInputFrame()
	if action := m.queue.Poll(); action != core.ActionNone {
		input.Set(action)
	}

	result := m.game.Step(input)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.logger.Info("game over", "won", m.gameState.Won, "score", m.gameState.Score, "lives", m.gameState.Lives)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickInterval)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the game ends or the
// player quits. It returns the final game state.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
