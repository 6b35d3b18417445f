package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mazechase/internal/core"
)

// fakeGame records every input frame it is stepped with.
type fakeGame struct {
	resets   int
	steps    []core.InputFrame
	state    core.GameState
	overAt   int // Step count that ends the game, 0 for never
	rendered int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = nil
	g.state = core.GameState{Lives: 3}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	if in.Has(core.ActionStart) {
		g.state.Started = true
	}
	if g.overAt > 0 && len(g.steps) >= g.overAt {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	g.rendered++
	dst.DrawText(0, 0, "board")
}

func (g *fakeGame) State() core.GameState { return g.state }

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickInterval: time.Millisecond, Seed: 1}, nil)
}

// started returns a model past the welcome screen.
func started(t *testing.T, g *fakeGame) Model {
	t.Helper()
	m := send(newTestModel(g), runeKey('x'))
	m = send(m, TickMsg{})
	if !m.State().Started {
		t.Fatal("model did not leave the welcome screen")
	}
	g.steps = nil
	return m
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModelResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	if g.resets != 1 {
		t.Errorf("Reset called %d times, expected 1", g.resets)
	}
	if m.State().Lives != 3 {
		t.Errorf("initial state not taken from the game: %+v", m.State())
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestAnyKeyStarts(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = send(m, runeKey('w'))
	m = send(m, runeKey('z'))
	m = send(m, TickMsg{})

	if len(g.steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionStart) {
		t.Error("first key should be delivered as ActionStart")
	}
	if g.steps[0].Has(core.ActionUp) {
		t.Error("the starting key should not also move")
	}
	if !m.State().Started {
		t.Error("model state should be started")
	}
}

func TestTickDeliversOneKey(t *testing.T) {
	g := &fakeGame{}
	m := started(t, g)

	m = send(m, runeKey('w'))
	m = send(m, runeKey('a'))
	m = send(m, TickMsg{})
	m = send(m, TickMsg{})
	send(m, TickMsg{})

	if len(g.steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionUp) || g.steps[0].Has(core.ActionLeft) {
		t.Error("first tick should carry only ActionUp")
	}
	if !g.steps[1].Has(core.ActionLeft) {
		t.Error("second tick should carry ActionLeft")
	}
	for a := core.ActionNone + 1; a <= core.ActionQuit; a++ {
		if g.steps[2].Has(a) {
			t.Errorf("third tick should be empty, has %v", a)
		}
	}
}

func TestKeyQueueDropsOverflow(t *testing.T) {
	g := &fakeGame{}
	m := started(t, g)

	for _, r := range "wasdw" {
		m = send(m, runeKey(r))
	}
	for i := 0; i < 5; i++ {
		m = send(m, TickMsg{})
	}

	expected := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionNone, core.ActionNone}
	for i, want := range expected {
		if want == core.ActionNone {
			if g.steps[i].Has(core.ActionUp) || g.steps[i].Has(core.ActionRight) {
				t.Errorf("tick %d should be empty", i)
			}
			continue
		}
		if !g.steps[i].Has(want) {
			t.Errorf("tick %d missing %v", i, want)
		}
	}
}

func TestUnboundKeysIgnored(t *testing.T) {
	g := &fakeGame{}
	m := started(t, g)

	m = send(m, runeKey('x'))
	send(m, TickMsg{})

	if len(g.steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.steps))
	}
	for a := core.ActionNone + 1; a <= core.ActionQuit; a++ {
		if g.steps[0].Has(a) {
			t.Errorf("unbound key produced %v", a)
		}
	}
}

func TestMovesIgnoredWhilePaused(t *testing.T) {
	g := &fakeGame{}
	m := started(t, g)
	g.state.Paused = true
	m.gameState.Paused = true

	m = send(m, runeKey('w'))
	m = send(m, runeKey('p'))
	send(m, TickMsg{})

	if len(g.steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.steps))
	}
	if g.steps[0].Has(core.ActionUp) {
		t.Error("move pressed while paused should be dropped")
	}
	if !g.steps[0].Has(core.ActionPause) {
		t.Error("pause key should still reach the game")
	}
}

func TestQuitKey(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			g := &fakeGame{}
			m := newTestModel(g)

			next, cmd := m.Update(msg)
			if !isQuit(cmd) {
				t.Error("expected tea.Quit")
			}
			if view := next.(Model).View(); view != "" {
				t.Errorf("View after quit = %q, expected empty", view)
			}
		})
	}
}

func TestGameOverQuits(t *testing.T) {
	g := &fakeGame{overAt: 2}
	m := newTestModel(g)

	next, cmd := m.Update(TickMsg{})
	if isQuit(cmd) {
		t.Fatal("should keep ticking before game over")
	}
	m = next.(Model)

	next, cmd = m.Update(TickMsg{})
	if !isQuit(cmd) {
		t.Error("expected tea.Quit on game over")
	}
	if !next.(Model).State().GameOver {
		t.Error("final state should be game over")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen is %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestViewRendersGameAndHelp(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	view := m.View()
	if g.rendered != 1 {
		t.Errorf("Render called %d times, expected 1", g.rendered)
	}
	if !strings.Contains(view, "board") {
		t.Error("view missing game output")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view missing help footer")
	}
}
