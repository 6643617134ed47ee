package cycle

import "github.com/vovakirdan/snake-cycle/internal/games/cycle/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying    GameStateType = "playing"
	StateWon        GameStateType = "won"
	StateDead       GameStateType = "dead"
	StatePaused     GameStateType = "paused"
	StateComplete   GameStateType = "complete"
	StateLoadFailed GameStateType = "load_failed"
)

// Snapshot captures the game state for tests and replay checks.
type Snapshot struct {
	Tick       uint64
	Level      string
	LevelIndex int // -1 for off-campaign maps
	Cleared    int
	State      GameStateType
	Cause      core.DeathCause
	HeadX      int
	HeadY      int
	HasHead    bool
	Segments   int
	Movable    int
	Total      int
	Individual int
	Pending    string
	Busy       bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Level:      g.levelID,
		LevelIndex: g.levelIndex,
		Cleared:    g.cleared,
		Cause:      g.cause,
		Pending:    g.keys.String(),
	}

	switch {
	case g.engine == nil:
		s.State = StateLoadFailed
		return s
	case g.finished:
		s.State = StateComplete
	case g.paused:
		s.State = StatePaused
	case g.status == core.StatusWon:
		s.State = StateWon
	case g.status == core.StatusDead:
		s.State = StateDead
	default:
		s.State = StatePlaying
	}

	if p, ok := g.engine.Head(); ok {
		s.HeadX, s.HeadY, s.HasHead = p.X, p.Y, true
	}
	s.Segments = len(g.engine.Segments())
	s.Movable = g.engine.MovableCount()
	b := g.engine.Budget()
	s.Total, s.Individual = b.Total, b.Individual
	s.Busy = g.engine.Busy()
	return s
}
