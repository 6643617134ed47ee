package core

// TopKind is what occupies the top layer of a tile.
type TopKind int

const (
	TopEmpty TopKind = iota
	TopSnake
	TopWall
	TopDoor
)

// String returns the kind name.
func (k TopKind) String() string {
	switch k {
	case TopEmpty:
		return "empty"
	case TopSnake:
		return "snake"
	case TopWall:
		return "wall"
	case TopDoor:
		return "door"
	default:
		return "unknown"
	}
}

// BottomKind is the floor feature of a tile.
type BottomKind int

const (
	BottomEmpty BottomKind = iota
	BottomPlate
	BottomExit
	BottomSpike
	BottomHint
	BottomAntiDoor
)

// String returns the kind name.
func (k BottomKind) String() string {
	switch k {
	case BottomEmpty:
		return "empty"
	case BottomPlate:
		return "plate"
	case BottomExit:
		return "exit"
	case BottomSpike:
		return "spike"
	case BottomHint:
		return "hint"
	case BottomAntiDoor:
		return "anti-door"
	default:
		return "unknown"
	}
}

// Top is the occupant layer. Channel is set for doors only.
type Top struct {
	Kind    TopKind
	Channel rune
}

// Bottom is the floor layer. Channel is set for plates and anti-doors,
// Text for hints.
type Bottom struct {
	Kind    BottomKind
	Channel rune
	Text    string
}

// Tile is a single board cell. The two layers change independently.
type Tile struct {
	Top    Top
	Bottom Bottom
}

// EffectKind identifies a side effect requested by a tile.
type EffectKind int

const (
	EffectPlateActivated EffectKind = iota
	EffectWin
)

// Effect is emitted by SnakeEnters and executed by the engine.
type Effect struct {
	Kind    EffectKind
	Channel rune
	Pos     Pos
}

// IsOccupied reports whether the top layer blocks movement.
func (t *Tile) IsOccupied() bool {
	return t.Top.Kind != TopEmpty
}

// SnakeEnters marks the tile as holding a snake segment and returns the
// effects of the floor underneath. The caller must check IsOccupied first.
func (t *Tile) SnakeEnters(at Pos) []Effect {
	t.Top = Top{Kind: TopSnake}

	switch t.Bottom.Kind {
	case BottomPlate:
		return []Effect{{Kind: EffectPlateActivated, Channel: t.Bottom.Channel, Pos: at}}
	case BottomExit:
		return []Effect{{Kind: EffectWin, Pos: at}}
	default:
		return nil
	}
}

// SegmentLeaves frees the tile after a segment is removed. A door that took
// the cell is left alone.
func (t *Tile) SegmentLeaves() {
	if t.Top.Kind == TopSnake {
		t.Top = Top{}
	}
}

// Vacate clears the top layer regardless of occupant.
func (t *Tile) Vacate() {
	t.Top = Top{}
}

// UpgradeToDoor turns an anti-door floor into a closed door of the same
// channel. Whatever stood on the tile is displaced; the caller kills it.
func (t *Tile) UpgradeToDoor(channel rune) {
	t.Top = Top{Kind: TopDoor, Channel: channel}
	t.Bottom = Bottom{}
}
