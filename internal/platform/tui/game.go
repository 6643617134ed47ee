package tui

import "github.com/vovakirdan/snake-cycle/internal/core"

// Game is what the front end drives. Implementations stay free of Bubble Tea.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(input core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// GameFactory creates a game that starts at level, or at the beginning of
// the campaign when level is empty.
type GameFactory func(level string) Game
