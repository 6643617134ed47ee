package core

// Grid is the fixed-size board, stored row-major with row 0 at the bottom.
type Grid struct {
	W     int
	H     int
	tiles []Tile
}

// NewGrid creates an empty grid.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, tiles: make([]Tile, w*h)}
}

// InBounds returns true if p lies on the board.
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Get returns a mutable reference to the tile at p.
// Out-of-range positions return nil, false.
func (g *Grid) Get(p Pos) (*Tile, bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	return &g.tiles[p.Y*g.W+p.X], true
}

// At returns a copy of the tile at p, or an empty tile when out of range.
func (g *Grid) At(p Pos) Tile {
	t, ok := g.Get(p)
	if !ok {
		return Tile{}
	}
	return *t
}

// Set replaces the tile at p. Out-of-range positions are ignored.
func (g *Grid) Set(p Pos, t Tile) {
	if dst, ok := g.Get(p); ok {
		*dst = t
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, tiles: make([]Tile, len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}

// Each calls fn for every tile, bottom row first.
func (g *Grid) Each(fn func(p Pos, t Tile)) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			fn(P(x, y), g.tiles[y*g.W+x])
		}
	}
}

// Count returns the number of tiles matching pred.
func (g *Grid) Count(pred func(Tile) bool) int {
	n := 0
	for _, t := range g.tiles {
		if pred(t) {
			n++
		}
	}
	return n
}
