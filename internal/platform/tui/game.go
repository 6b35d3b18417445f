package tui

import "github.com/vovakirdan/tui-mazechase/internal/core"

// Game is the contract the driver runs. Step is called once per tick with
// at most one action set in the input frame.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(input core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}
