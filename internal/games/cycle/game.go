// Package cycle provides the snake-cycle puzzle: a snake that grows into
// every cell it enters and can only get back by rewinding.
package cycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-cycle/internal/config"
	platformcore "github.com/vovakirdan/snake-cycle/internal/core"
	"github.com/vovakirdan/snake-cycle/internal/games/cycle/core"
	"github.com/vovakirdan/snake-cycle/internal/games/cycle/levels"
)

// Game implements the puzzle on top of the platform Screen/InputFrame loop.
type Game struct {
	cfg      config.CycleConfig
	loader   *levels.Loader
	logger   *log.Logger
	campaign []string
	startID  string

	// Current level
	levelIndex int // index into campaign, -1 when playing an off-campaign map
	levelID    string
	level      *levels.Level
	engine     *core.Engine
	keys       core.KeyBuffer
	pending    []rune // typed keys held over to the next tick
	status     core.Status
	cause      core.DeathCause

	// Screen dimensions
	screenW int
	screenH int
	tickDur time.Duration

	// Session state
	tick     uint64
	cleared  int
	paused   bool
	finished bool
	back     bool
	loadErr  error
	message  string
	events   []core.Event
}

// New creates a game. A nil logger uses the charm default logger.
func New(cfg config.CycleConfig, loader *levels.Loader, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	if loader == nil {
		loader = levels.Campaign()
	}
	return &Game{
		cfg:    cfg,
		loader: loader,
		logger: logger,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake-cycle"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake Cycle"
}

// SetStartLevel makes the next Reset begin at the given level ID.
func (g *Game) SetStartLevel(id string) {
	g.startID = id
}

// Campaign returns the level order used for advancing.
func (g *Game) Campaign() []string {
	out := make([]string, len(g.campaign))
	copy(out, g.campaign)
	return out
}

// Reset initializes/restarts the session.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickDur = cfg.TickDuration()
	g.tick = 0
	g.cleared = 0
	g.paused = false
	g.finished = false
	g.back = false
	g.loadErr = nil
	g.message = ""

	g.campaign = g.cfg.Campaign
	if len(g.campaign) == 0 {
		ids, err := g.loader.ListIDs()
		if err != nil {
			g.fail(fmt.Errorf("listing levels: %w", err))
			return
		}
		g.campaign = ids
	}

	start := g.startID
	if start == "" {
		if len(g.campaign) == 0 {
			g.fail(errors.New("no levels available"))
			return
		}
		start = g.campaign[0]
	}
	g.loadLevel(start)
}

// Resize updates the screen size without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

func (g *Game) fail(err error) {
	g.loadErr = err
	g.engine = nil
	g.back = true
	g.logger.Error("level load failed", "err", err)
}

func (g *Game) campaignIndex(id string) int {
	for i, name := range g.campaign {
		if name == id {
			return i
		}
	}
	return -1
}

// loadLevel parses a map and builds a fresh engine with the level budget.
func (g *Game) loadLevel(id string) {
	lvl, err := g.loader.LoadByID(id)
	if err != nil {
		g.fail(err)
		return
	}

	opts := EngineOptions(g.cfg, id, g.logger)
	b := opts.Budget

	eng, err := core.New(lvl.Grid, opts)
	if err != nil {
		g.fail(fmt.Errorf("level %s: %w", id, err))
		return
	}

	g.level = lvl
	g.levelID = id
	g.levelIndex = g.campaignIndex(id)
	g.engine = eng
	g.keys.Reset()
	g.pending = g.pending[:0]
	g.status = core.StatusPlaying
	g.cause = core.CauseNone
	g.message = ""
	g.logger.Info("level loaded", "level", id, "budget", fmt.Sprintf("%d/%d", b.Total, b.Individual))
}

// EngineOptions builds engine options for a level from the config.
// An unknown snake color falls back to bright green with a warning.
func EngineOptions(cfg config.CycleConfig, id string, logger *log.Logger) core.Options {
	if logger == nil {
		logger = log.Default()
	}
	opts := core.Options{
		SnakeSize:    cfg.Snake.Size,
		MoveDuration: cfg.Timing.Move(),
		FadeDuration: cfg.Timing.Fade(),
		SpikePeriod:  cfg.Timing.SpikePeriod(),
		SpikeActive:  cfg.Timing.SpikeActive(),
		Logger:       logger,
	}
	color, ok := platformcore.ParseColor(cfg.Snake.Color)
	if !ok {
		logger.Warn("unknown snake color", "color", cfg.Snake.Color)
		color = platformcore.ColorBrightGreen
	}
	opts.SnakeColor = color
	b := cfg.BudgetFor(id)
	opts.Budget = core.Budget{Total: b.Total, Individual: b.Individual}
	return opts
}

// advanceLevel moves to the next campaign level, or finishes the campaign.
// Off-campaign maps continue with the next numbered map if there is one.
func (g *Game) advanceLevel() {
	if g.levelIndex >= 0 {
		if g.levelIndex+1 < len(g.campaign) {
			g.loadLevel(g.campaign[g.levelIndex+1])
			return
		}
		g.finished = true
		return
	}

	next, ok := levels.NextID(g.levelID)
	if !ok {
		g.finished = true
		return
	}
	if _, err := g.loader.LoadByID(next); err != nil {
		g.finished = true
		return
	}
	g.loadLevel(next)
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.events = g.events[:0]

	if input.Has(platformcore.ActionBack) {
		g.back = true
	}
	if g.back || g.engine == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if g.finished {
		if input.Has(platformcore.ActionConfirm) {
			g.back = true
		}
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if g.status != core.StatusPlaying {
		g.stepEnded(input)
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionRestart) {
		g.loadLevel(g.levelID)
		return platformcore.StepResult{State: g.State()}
	}

	// Movement first, then the rewind buffer.
	if v, ok := moveFromInput(input); ok {
		res := g.engine.Move(v)
		g.events = append(g.events, res.Events...)
	}
	g.processTyped(input.Typed)

	adv := g.engine.Advance(g.tickDur)
	g.events = append(g.events, adv.Events...)

	g.status, g.cause = g.engine.Status()
	switch g.status {
	case core.StatusWon:
		g.cleared++
		g.logger.Info("level cleared", "level", g.levelID)
	case core.StatusDead:
		g.logger.Info("snake died", "level", g.levelID, "cause", g.cause.String())
	}

	return platformcore.StepResult{State: g.State()}
}

// stepEnded handles input on the win and death screens.
func (g *Game) stepEnded(input platformcore.InputFrame) {
	// Fades keep running behind the overlay.
	g.engine.Advance(g.tickDur)

	switch {
	case input.Has(platformcore.ActionRestart):
		g.loadLevel(g.levelID)
	case input.Has(platformcore.ActionConfirm):
		if g.status == core.StatusWon {
			g.advanceLevel()
		} else {
			g.loadLevel(g.levelID)
		}
	}
}

// maxPending bounds keys held over between ticks.
const maxPending = 64

// processTyped feeds command keys into the rewind buffer in typed order.
// At most one command completes per tick; keys after it wait for the next.
func (g *Game) processTyped(typed []rune) {
	queue := make([]rune, 0, len(g.pending)+len(typed))
	queue = append(append(queue, g.pending...), typed...)
	g.pending = g.pending[:0]

	for i, r := range queue {
		k, ok := core.KeyFromRune(r)
		if !ok {
			continue
		}
		cmd, done := g.keys.Push(k)
		if !done {
			continue
		}
		g.runCommand(cmd)

		rest := queue[i+1:]
		if len(rest) > maxPending {
			rest = rest[:maxPending]
		}
		g.pending = append(g.pending[:0], rest...)
		return
	}
}

func (g *Game) runCommand(cmd core.Command) {
	switch {
	case errors.Is(cmd.Err, core.ErrEasterEgg):
		g.logger.Info("uwu")
		g.message = "uwu"
	case cmd.Err != nil:
		g.logger.Debug("rewind buffer discarded", "err", cmd.Err)
		g.message = "C, digits, Enter"
	default:
		res := g.engine.Rewind(cmd.Steps)
		g.events = append(g.events, res.Events...)
		g.message = fmt.Sprintf("rewound %d", cmd.Steps)
	}
}

func moveFromInput(input platformcore.InputFrame) (core.Vec, bool) {
	switch {
	case input.Has(platformcore.ActionUp):
		return core.DirUp.Vec(), true
	case input.Has(platformcore.ActionDown):
		return core.DirDown.Vec(), true
	case input.Has(platformcore.ActionLeft):
		return core.DirLeft.Vec(), true
	case input.Has(platformcore.ActionRight):
		return core.DirRight.Vec(), true
	default:
		return core.Vec{}, false
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.cleared,
		GameOver: g.finished || g.loadErr != nil,
		Paused:   g.paused,
		Back:     g.back,
	}
}

// Events returns the engine events produced by the last Step.
func (g *Game) Events() []core.Event {
	out := make([]core.Event, len(g.events))
	copy(out, g.events)
	return out
}

// Engine exposes the engine of the current level, nil after a load failure.
func (g *Game) Engine() *core.Engine {
	return g.engine
}

// Level returns the current level.
func (g *Game) Level() *levels.Level {
	return g.level
}

// LoadErr returns the error that ended the session, if any.
func (g *Game) LoadErr() error {
	return g.loadErr
}
