package core

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/snake-cycle/internal/core"
)

// Default presentation and hazard timings.
const (
	DefaultMoveDuration = 300 * time.Millisecond
	DefaultFadeDuration = 500 * time.Millisecond
	DefaultSpikePeriod  = 3500 * time.Millisecond
	DefaultSpikeActive  = 500 * time.Millisecond
)

var (
	ErrNoHead        = errors.New("board has no snake head")
	ErrMultipleHeads = errors.New("board has more than one snake head")
)

// Options configures an Engine.
type Options struct {
	SnakeColor   platformcore.Color
	SnakeSize    float64
	MoveDuration time.Duration
	FadeDuration time.Duration
	SpikePeriod  time.Duration
	SpikeActive  time.Duration
	Budget       Budget
	Logger       *log.Logger
}

// DefaultOptions returns the stock timings with a 100/100 budget.
func DefaultOptions() Options {
	return Options{
		SnakeColor:   platformcore.ColorBrightGreen,
		SnakeSize:    1,
		MoveDuration: DefaultMoveDuration,
		FadeDuration: DefaultFadeDuration,
		SpikePeriod:  DefaultSpikePeriod,
		SpikeActive:  DefaultSpikeActive,
		Budget:       Budget{Total: 100, Individual: 100},
	}
}

// Status is the level outcome as seen by the observer.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusDead
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusDead:
		return "dead"
	default:
		return "unknown"
	}
}

// DeathCause explains StatusDead.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseNoHead
	CauseBudget
)

// String returns a player-facing description.
func (c DeathCause) String() string {
	switch c {
	case CauseNoHead:
		return "the snake has no head left"
	case CauseBudget:
		return "out of rewinds"
	default:
		return ""
	}
}

// Ghost is a removed segment fading out. It never blocks movement.
type Ghost struct {
	Pos      Pos
	Index    int
	Color    platformcore.Color
	Elapsed  time.Duration
	Duration time.Duration
}

// Alpha returns the remaining opacity in [0, 1].
func (g Ghost) Alpha() float64 {
	if g.Duration <= 0 || g.Elapsed >= g.Duration {
		return 0
	}
	return 1 - float64(g.Elapsed)/float64(g.Duration)
}

// MoveResult reports the outcome of Move.
type MoveResult struct {
	Moved  bool
	Head   Entity
	Events []Event
}

// RewindResult reports the outcome of Rewind.
type RewindResult struct {
	Removed  int
	Promoted Entity
	Events   []Event
}

// AdvanceResult reports what happened while time passed.
type AdvanceResult struct {
	Events []Event
}

// SegmentView is a read-only copy of a living segment.
type SegmentView struct {
	Entity  Entity
	Pos     Pos
	Index   int
	Color   platformcore.Color
	Size    float64
	Movable bool
	Transit *Transit
}

// Engine owns one level: the grid, the entity world and the budget.
// All public methods are safe for concurrent use; each runs as one
// exclusive section.
type Engine struct {
	mu sync.Mutex

	grid   *Grid
	world  *World
	budget Budget
	opts   Options
	log    *log.Logger

	ghosts     []Ghost
	spikeClock time.Duration
	won        bool
}

// New builds an engine for grid, spawning entities for the snake head,
// doors, anti-doors, plates and spikes found on it. The grid is owned by the
// engine afterwards.
func New(grid *Grid, opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.SnakeSize <= 0 {
		opts.SnakeSize = 1
	}
	e := &Engine{
		grid:   grid,
		world:  NewWorld(),
		budget: opts.Budget,
		opts:   opts,
		log:    opts.Logger,
	}

	heads := 0
	var err error
	grid.Each(func(p Pos, t Tile) {
		switch t.Top.Kind {
		case TopSnake:
			heads++
			if heads > 1 {
				err = ErrMultipleHeads
				return
			}
			head := e.spawnSegment(p, 0)
			e.world.Movable.Set(head, Marker{})
		case TopDoor:
			ent := e.world.Spawn()
			e.world.Position.Set(ent, p)
			e.world.Door.Set(ent, Door{Channel: t.Top.Channel})
		}

		switch t.Bottom.Kind {
		case BottomPlate:
			ent := e.world.Spawn()
			e.world.Position.Set(ent, p)
			e.world.Plate.Set(ent, Plate{Channel: t.Bottom.Channel})
		case BottomAntiDoor:
			ent := e.world.Spawn()
			e.world.Position.Set(ent, p)
			e.world.AntiDoor.Set(ent, AntiDoor{Channel: t.Bottom.Channel})
		case BottomSpike:
			ent := e.world.Spawn()
			e.world.Position.Set(ent, p)
			e.world.Spike.Set(ent, Marker{})
		}
	})
	if err != nil {
		return nil, err
	}
	if heads == 0 {
		return nil, ErrNoHead
	}
	return e, nil
}

func (e *Engine) spawnSegment(p Pos, index int) Entity {
	ent := e.world.Spawn()
	e.world.Position.Set(ent, p)
	e.world.Segment.Set(ent, Segment{Index: index, Color: e.opts.SnakeColor, Size: e.opts.SnakeSize})
	return ent
}

// head returns the single Movable segment. More than one is a programming
// error and panics.
func (e *Engine) head() (Entity, bool) {
	switch e.world.Movable.Len() {
	case 0:
		return NoEntity, false
	case 1:
		return e.world.Movable.Entities()[0], true
	default:
		panic("cycle: more than one movable segment")
	}
}

func (e *Engine) inTransit() bool {
	return e.world.Transit.Len() > 0
}

// Move tries to extend the snake by v. Only unit axis vectors are accepted.
// Rejected moves leave all state untouched.
func (e *Engine) Move(v Vec) MoveResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !v.IsUnitAxis() {
		return MoveResult{}
	}
	head, ok := e.head()
	if !ok || e.inTransit() {
		return MoveResult{}
	}

	from, _ := e.world.Position.Get(head)
	to := from.Add(v)
	tile, ok := e.grid.Get(to)
	if !ok || tile.IsOccupied() {
		return MoveResult{Events: []Event{{Kind: EventMoveBlocked, Pos: to}}}
	}

	effects := tile.SnakeEnters(to)

	seg, _ := e.world.Segment.Get(head)
	next := e.spawnSegment(to, seg.Index+1)
	e.world.Movable.Remove(head)
	e.world.Movable.Set(next, Marker{})
	if e.opts.MoveDuration > 0 {
		e.world.Transit.Set(next, Transit{From: from, To: to, Duration: e.opts.MoveDuration})
	}

	events := []Event{{Kind: EventSegmentSpawned, Pos: to, Entity: next, Index: seg.Index + 1}}
	for _, fx := range effects {
		events = append(events, e.dispatch(fx)...)
	}
	return MoveResult{Moved: true, Head: next, Events: events}
}

func (e *Engine) dispatch(fx Effect) []Event {
	switch fx.Kind {
	case EffectPlateActivated:
		return e.activatePlate(fx.Channel, fx.Pos)
	case EffectWin:
		if e.won {
			return nil
		}
		e.won = true
		return []Event{{Kind: EventWin, Pos: fx.Pos}}
	default:
		return nil
	}
}

func (e *Engine) plateAt(p Pos) (Entity, Plate, bool) {
	for _, ent := range e.world.Plate.Entities() {
		if pos, _ := e.world.Position.Get(ent); pos == p {
			pl, _ := e.world.Plate.Get(ent)
			return ent, pl, true
		}
	}
	return NoEntity, Plate{}, false
}

func (e *Engine) segmentAt(p Pos) (Entity, bool) {
	for _, ent := range e.world.Segment.Entities() {
		if pos, _ := e.world.Position.Get(ent); pos == p {
			return ent, true
		}
	}
	return NoEntity, false
}

// activatePlate opens the doors of channel and closes its anti-doors.
// A plate reacts only the first time it is stepped on.
func (e *Engine) activatePlate(channel rune, at Pos) []Event {
	ent, plate, ok := e.plateAt(at)
	if !ok {
		e.log.Warn("plate activated with no plate entity", "pos", at, "channel", string(channel))
		return nil
	}
	if plate.Latched {
		return nil
	}
	plate.Latched = true
	e.world.Plate.Set(ent, plate)

	events := []Event{{Kind: EventPlateActivated, Pos: at, Channel: channel, Entity: ent}}

	for _, door := range e.world.Door.Entities() {
		d, _ := e.world.Door.Get(door)
		if d.Channel != channel {
			continue
		}
		pos, _ := e.world.Position.Get(door)
		if tile, ok := e.grid.Get(pos); ok {
			tile.Vacate()
		}
		e.world.Despawn(door)
		events = append(events, Event{Kind: EventDoorOpened, Pos: pos, Channel: channel})
	}

	for _, anti := range e.world.AntiDoor.Entities() {
		a, _ := e.world.AntiDoor.Get(anti)
		if a.Channel != channel {
			continue
		}
		pos, _ := e.world.Position.Get(anti)
		e.world.AntiDoor.Remove(anti)
		e.world.Door.Set(anti, Door{Channel: channel})
		if tile, ok := e.grid.Get(pos); ok {
			tile.UpgradeToDoor(channel)
		}
		events = append(events, Event{Kind: EventDoorClosed, Pos: pos, Channel: channel, Entity: anti})

		if seg, ok := e.segmentAt(pos); ok {
			events = append(events, e.kill(seg))
		}
	}

	e.log.Debug("plate activated", "channel", string(channel), "pos", at)
	return events
}

// kill strips a segment of everything that makes it part of the snake and
// tags it Dead. The tile is left to the caller.
func (e *Engine) kill(ent Entity) Event {
	seg, _ := e.world.Segment.Get(ent)
	pos, _ := e.world.Position.Get(ent)
	e.world.Segment.Remove(ent)
	e.world.Movable.Remove(ent)
	e.world.Transit.Remove(ent)
	e.world.Dead.Set(ent, Marker{})
	return Event{Kind: EventSegmentKilled, Pos: pos, Entity: ent, Index: seg.Index}
}

// livingByIndexDesc returns living segments, newest first.
func (e *Engine) livingByIndexDesc() []Entity {
	ents := e.world.Segment.Entities()
	sort.SliceStable(ents, func(i, j int) bool {
		a, _ := e.world.Segment.Get(ents[i])
		b, _ := e.world.Segment.Get(ents[j])
		return a.Index > b.Index
	})
	return ents
}

// Rewind removes the newest steps segments and hands control to the next
// one. The budget is charged in full even when fewer segments exist.
// Negative steps are ignored.
func (e *Engine) Rewind(steps int) RewindResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if steps < 0 {
		return RewindResult{}
	}

	segs := e.livingByIndexDesc()
	n := min(steps, len(segs))
	res := RewindResult{}

	for _, ent := range segs[:n] {
		seg, _ := e.world.Segment.Get(ent)
		pos, _ := e.world.Position.Get(ent)
		if tile, ok := e.grid.Get(pos); ok {
			tile.SegmentLeaves()
		}
		if e.opts.FadeDuration > 0 {
			e.ghosts = append(e.ghosts, Ghost{Pos: pos, Index: seg.Index, Color: seg.Color, Duration: e.opts.FadeDuration})
		}
		e.world.Despawn(ent)
		res.Events = append(res.Events, Event{Kind: EventSegmentRemoved, Pos: pos, Entity: ent, Index: seg.Index})
	}
	res.Removed = n

	if steps < len(segs) {
		promoted := segs[steps]
		e.world.Movable.Clear()
		e.world.Movable.Set(promoted, Marker{})
		res.Promoted = promoted
	}

	e.budget.Spend(steps)
	res.Events = append(res.Events, Event{Kind: EventRewound, Steps: steps})
	e.log.Debug("rewound", "steps", steps, "removed", n, "total", e.budget.Total, "individual", e.budget.Individual)
	return res
}

// Advance moves the presentation timers and the spike cycle forward by dt.
func (e *Engine) Advance(dt time.Duration) AdvanceResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if dt < 0 {
		dt = 0
	}
	var res AdvanceResult

	for _, ent := range e.world.Transit.Entities() {
		tr, _ := e.world.Transit.Get(ent)
		tr.Elapsed += dt
		if tr.Done() {
			e.world.Transit.Remove(ent)
			continue
		}
		e.world.Transit.Set(ent, tr)
	}

	kept := e.ghosts[:0]
	for _, g := range e.ghosts {
		g.Elapsed += dt
		if g.Elapsed < g.Duration {
			kept = append(kept, g)
		}
	}
	e.ghosts = kept

	res.Events = append(res.Events, e.advanceSpikes(dt)...)
	return res
}

func (e *Engine) advanceSpikes(dt time.Duration) []Event {
	if e.world.Spike.Len() == 0 || e.opts.SpikePeriod <= 0 {
		return nil
	}
	from := e.spikeClock
	e.spikeClock += dt
	crossed := e.spikeClock/e.opts.SpikePeriod > from/e.opts.SpikePeriod

	var events []Event
	if crossed {
		events = append(events, Event{Kind: EventSpikeStrike})
	}
	// A long dt may jump over a whole active window; any overlap of
	// [from, clock] with a window counts.
	if !crossed && !e.spikeHotAt(from) && !e.spikeHotAt(e.spikeClock) {
		return events
	}

	for _, spike := range e.world.Spike.Entities() {
		pos, _ := e.world.Position.Get(spike)
		seg, ok := e.segmentAt(pos)
		if !ok {
			continue
		}
		ev := e.kill(seg)
		if tile, ok := e.grid.Get(pos); ok {
			tile.SegmentLeaves()
		}
		e.world.Despawn(seg)
		events = append(events, ev)
	}
	return events
}

// SpikesActive reports whether spikes are currently deadly.
func (e *Engine) SpikesActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.world.Spike.Len() == 0 || e.opts.SpikePeriod <= 0 {
		return false
	}
	return e.spikeHotAt(e.spikeClock)
}

func (e *Engine) spikeHotAt(t time.Duration) bool {
	return t%e.opts.SpikePeriod <= e.opts.SpikeActive
}

// Status reports whether the level is still being played.
// A win is final; death is checked only while not won.
func (e *Engine) Status() (Status, DeathCause) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.won {
		return StatusWon, CauseNone
	}
	if e.budget.Exhausted() {
		return StatusDead, CauseBudget
	}
	if e.world.Movable.Len() == 0 && !e.inTransit() {
		return StatusDead, CauseNoHead
	}
	return StatusPlaying, CauseNone
}

// Busy reports whether a move animation is still running.
func (e *Engine) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inTransit()
}

// Budget returns the remaining rewind budget.
func (e *Engine) Budget() Budget {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.budget
}

// Head returns the position of the movable segment.
func (e *Engine) Head() (Pos, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	head, ok := e.head()
	if !ok {
		return Pos{}, false
	}
	p, _ := e.world.Position.Get(head)
	return p, true
}

// Segments returns the living segments ordered by index, oldest first.
func (e *Engine) Segments() []SegmentView {
	e.mu.Lock()
	defer e.mu.Unlock()

	ents := e.livingByIndexDesc()
	out := make([]SegmentView, 0, len(ents))
	for i := len(ents) - 1; i >= 0; i-- {
		ent := ents[i]
		seg, _ := e.world.Segment.Get(ent)
		pos, _ := e.world.Position.Get(ent)
		v := SegmentView{
			Entity:  ent,
			Pos:     pos,
			Index:   seg.Index,
			Color:   seg.Color,
			Size:    seg.Size,
			Movable: e.world.Movable.Has(ent),
		}
		if tr, ok := e.world.Transit.Get(ent); ok {
			v.Transit = &tr
		}
		out = append(out, v)
	}
	return out
}

// Ghosts returns the fading segments.
func (e *Engine) Ghosts() []Ghost {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Ghost, len(e.ghosts))
	copy(out, e.ghosts)
	return out
}

// MovableCount returns how many segments carry the Movable marker.
func (e *Engine) MovableCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.world.Movable.Len()
}

// DeadCount returns how many segments were killed but left on the board.
func (e *Engine) DeadCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.world.Dead.Len()
}

// Grid returns a copy of the board.
func (e *Engine) Grid() *Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Clone()
}

// Tile returns a copy of the tile at p.
func (e *Engine) Tile(p Pos) (Tile, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.grid.Get(p)
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// DoorsOpen returns the channels whose plates have fired.
func (e *Engine) DoorsOpen() []rune {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []rune
	for _, ent := range e.world.Plate.Entities() {
		pl, _ := e.world.Plate.Get(ent)
		if pl.Latched {
			out = append(out, pl.Channel)
		}
	}
	return out
}
