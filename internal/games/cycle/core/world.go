package core

import (
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/snake-cycle/internal/core"
)

// Entity is a handle into the World arena. A handle goes stale when its slot
// is despawned; the generation prevents a reused slot from matching it.
type Entity struct {
	id  uint32
	gen uint32
}

// NoEntity is the zero handle. It is never alive.
var NoEntity = Entity{}

// IsZero returns true for the zero handle.
func (e Entity) IsZero() bool {
	return e.gen == 0
}

// String returns a debug representation.
func (e Entity) String() string {
	return fmt.Sprintf("e%d.%d", e.id, e.gen)
}

// Marker is a zero-sized tag component.
type Marker struct{}

// Segment is one link of the snake chain.
type Segment struct {
	Index int
	Color platformcore.Color
	Size  float64
}

// Transit is the visual move of a segment between two cells.
type Transit struct {
	From     Pos
	To       Pos
	Elapsed  time.Duration
	Duration time.Duration
}

// Progress returns the lerp factor in [0, 1].
func (t Transit) Progress() float64 {
	if t.Duration <= 0 || t.Elapsed >= t.Duration {
		return 1
	}
	return float64(t.Elapsed) / float64(t.Duration)
}

// Done reports whether the move animation has finished.
func (t Transit) Done() bool {
	return t.Elapsed >= t.Duration
}

// Door is a closed door entity.
type Door struct {
	Channel rune
}

// AntiDoor is an open floor cell that closes when its channel fires.
type AntiDoor struct {
	Channel rune
}

// Plate is a pressure plate. It fires once.
type Plate struct {
	Channel rune
	Latched bool
}

// Store holds one component type as a sparse set. Iteration follows
// insertion order so simulations are reproducible.
type Store[T any] struct {
	index    map[Entity]int
	entities []Entity
	values   []T
}

// NewStore creates an empty component store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{index: make(map[Entity]int)}
}

// Set inserts or replaces the component of e.
func (s *Store[T]) Set(e Entity, v T) {
	if i, ok := s.index[e]; ok {
		s.values[i] = v
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, v)
}

// Get returns the component of e.
func (s *Store[T]) Get(e Entity) (T, bool) {
	i, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

// Has returns true if e carries the component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Remove deletes the component of e, keeping the order of the rest.
func (s *Store[T]) Remove(e Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	delete(s.index, e)
	s.entities = append(s.entities[:i], s.entities[i+1:]...)
	s.values = append(s.values[:i], s.values[i+1:]...)
	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j]] = j
	}
}

// Len returns the number of entities carrying the component.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Entities returns a copy of the entity list in insertion order.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Clear removes every component.
func (s *Store[T]) Clear() {
	s.index = make(map[Entity]int)
	s.entities = nil
	s.values = nil
}

// World is the entity arena plus every component store.
type World struct {
	gens  []uint32
	alive []bool
	free  []uint32

	Position *Store[Pos]
	Segment  *Store[Segment]
	Movable  *Store[Marker]
	Transit  *Store[Transit]
	Dead     *Store[Marker]
	Door     *Store[Door]
	AntiDoor *Store[AntiDoor]
	Plate    *Store[Plate]
	Spike    *Store[Marker]
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		Position: NewStore[Pos](),
		Segment:  NewStore[Segment](),
		Movable:  NewStore[Marker](),
		Transit:  NewStore[Transit](),
		Dead:     NewStore[Marker](),
		Door:     NewStore[Door](),
		AntiDoor: NewStore[AntiDoor](),
		Plate:    NewStore[Plate](),
		Spike:    NewStore[Marker](),
	}
}

// Spawn allocates a new entity, reusing a free slot when one exists.
func (w *World) Spawn() Entity {
	if n := len(w.free); n > 0 {
		id := w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[id] = true
		return Entity{id: id, gen: w.gens[id]}
	}
	id := uint32(len(w.gens))
	w.gens = append(w.gens, 1)
	w.alive = append(w.alive, true)
	return Entity{id: id, gen: 1}
}

// Alive returns true if e still refers to a live slot.
func (w *World) Alive(e Entity) bool {
	if e.IsZero() || int(e.id) >= len(w.gens) {
		return false
	}
	return w.alive[e.id] && w.gens[e.id] == e.gen
}

// Despawn removes every component of e and frees its slot.
// Stale handles are ignored.
func (w *World) Despawn(e Entity) {
	if !w.Alive(e) {
		return
	}
	w.Position.Remove(e)
	w.Segment.Remove(e)
	w.Movable.Remove(e)
	w.Transit.Remove(e)
	w.Dead.Remove(e)
	w.Door.Remove(e)
	w.AntiDoor.Remove(e)
	w.Plate.Remove(e)
	w.Spike.Remove(e)

	w.alive[e.id] = false
	w.gens[e.id]++
	w.free = append(w.free, e.id)
}

// Count returns the number of live entities.
func (w *World) Count() int {
	n := 0
	for _, a := range w.alive {
		if a {
			n++
		}
	}
	return n
}
