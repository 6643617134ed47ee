package core_test

import (
	"testing"

	"github.com/vovakirdan/snake-cycle/internal/games/cycle/core"
)

func TestWorldSpawnDespawn(t *testing.T) {
	w := core.NewWorld()

	a := w.Spawn()
	b := w.Spawn()
	w.Position.Set(a, core.P(1, 2))
	w.Segment.Set(a, core.Segment{Index: 3})

	if !w.Alive(a) || !w.Alive(b) {
		t.Fatal("spawned entities should be alive")
	}

	w.Despawn(a)
	if w.Alive(a) {
		t.Error("despawned entity should be dead")
	}
	if w.Position.Has(a) || w.Segment.Has(a) {
		t.Error("despawn should remove components")
	}

	c := w.Spawn()
	if w.Alive(a) {
		t.Error("stale handle must not match the reused slot")
	}
	if !w.Alive(c) {
		t.Error("reused slot should be alive")
	}
	if w.Count() != 2 {
		t.Errorf("count = %d, want 2", w.Count())
	}

	// Stale despawn is a no-op.
	w.Despawn(a)
	if !w.Alive(c) {
		t.Error("stale despawn killed the new entity")
	}
	if w.Alive(core.NoEntity) {
		t.Error("zero handle is never alive")
	}
}

func TestStoreKeepsInsertionOrder(t *testing.T) {
	w := core.NewWorld()
	s := core.NewStore[int]()
	var ents []core.Entity
	for i := 0; i < 4; i++ {
		e := w.Spawn()
		ents = append(ents, e)
		s.Set(e, i)
	}

	s.Remove(ents[1])
	s.Set(ents[0], 10)

	got := s.Entities()
	want := []core.Entity{ents[0], ents[2], ents[3]}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entities[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if v, _ := s.Get(ents[0]); v != 10 {
		t.Errorf("value = %d, want 10", v)
	}
	if v, _ := s.Get(ents[3]); v != 3 {
		t.Errorf("value = %d, want 3", v)
	}
}

func TestGridBounds(t *testing.T) {
	g := core.NewGrid(3, 2)

	tests := []struct {
		p  core.Pos
		ok bool
	}{
		{core.P(0, 0), true},
		{core.P(2, 1), true},
		{core.P(3, 0), false},
		{core.P(0, 2), false},
		{core.P(-1, 0), false},
	}
	for _, tt := range tests {
		tile, ok := g.Get(tt.p)
		if ok != tt.ok {
			t.Errorf("Get(%v) ok = %v, want %v", tt.p, ok, tt.ok)
		}
		if !ok && tile != nil {
			t.Errorf("Get(%v) returned a tile out of range", tt.p)
		}
	}
}

func TestTileSnakeEnters(t *testing.T) {
	tests := []struct {
		name   string
		bottom core.Bottom
		want   []core.EffectKind
	}{
		{"empty", core.Bottom{}, nil},
		{"plate", core.Bottom{Kind: core.BottomPlate, Channel: 'Z'}, []core.EffectKind{core.EffectPlateActivated}},
		{"exit", core.Bottom{Kind: core.BottomExit}, []core.EffectKind{core.EffectWin}},
		{"spike", core.Bottom{Kind: core.BottomSpike}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := core.Tile{Bottom: tt.bottom}
			fx := tile.SnakeEnters(core.P(4, 5))
			if !tile.IsOccupied() || tile.Top.Kind != core.TopSnake {
				t.Error("tile should hold the snake")
			}
			if len(fx) != len(tt.want) {
				t.Fatalf("effects = %+v, want %v", fx, tt.want)
			}
			for i := range fx {
				if fx[i].Kind != tt.want[i] || fx[i].Pos != core.P(4, 5) {
					t.Errorf("effect %d = %+v", i, fx[i])
				}
			}
			tile.SegmentLeaves()
			if tile.IsOccupied() {
				t.Error("tile should be free after the segment leaves")
			}
			if tile.Bottom != tt.bottom {
				t.Error("bottom layer must not change")
			}
		})
	}
}

func TestBudget(t *testing.T) {
	b := core.Budget{Total: 2, Individual: 1}
	b.Spend(1)
	if b.Exhausted() {
		t.Fatal("budget {1 0} is not exhausted")
	}
	b.Spend(0)
	if b.Exhausted() {
		t.Fatal("budget {0 0} is not exhausted")
	}
	b.Spend(0)
	if !b.Exhausted() {
		t.Fatal("budget {-1 0} is exhausted")
	}
}
