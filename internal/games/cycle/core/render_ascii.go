package core

import (
	"fmt"
	"strings"
)

// antiDoorGlyphs is the map glyph of an anti-door by channel.
var antiDoorGlyphs = map[rune]rune{
	'Z': 'A',
	'X': 'S',
	'C': 'D',
	'V': 'F',
	'B': 'G',
	'N': 'H',
	'M': 'J',
}

// TileGlyph returns the map glyph for a tile. Snake tiles are 'o', hints '?'
// and empty floor '.'.
func TileGlyph(t Tile) rune {
	switch t.Top.Kind {
	case TopWall:
		if t.Bottom.Kind == BottomHint {
			return '?'
		}
		return '#'
	case TopDoor:
		return t.Top.Channel
	case TopSnake:
		return 'o'
	}

	switch t.Bottom.Kind {
	case BottomPlate:
		return t.Bottom.Channel - 'A' + 'a'
	case BottomExit:
		return '|'
	case BottomSpike:
		return '$'
	case BottomAntiDoor:
		if g, ok := antiDoorGlyphs[t.Bottom.Channel]; ok {
			return g
		}
		return '~'
	}
	return '.'
}

// RenderASCII draws the board top row first, followed by a status line.
// This is used for debugging, the check command and golden tests.
func RenderASCII(e *Engine) string {
	grid := e.Grid()
	head, hasHead := e.Head()
	budget := e.Budget()
	status, cause := e.Status()

	var sb strings.Builder
	for y := grid.H - 1; y >= 0; y-- {
		for x := 0; x < grid.W; x++ {
			p := P(x, y)
			if hasHead && p == head {
				sb.WriteRune('@')
				continue
			}
			sb.WriteRune(TileGlyph(grid.At(p)))
		}
		sb.WriteString("\n")
	}

	line := fmt.Sprintf("status: %s | segments: %d | budget: %d/%d",
		status, len(e.Segments()), budget.Total, budget.Individual)
	if cause != CauseNone {
		line += " | " + cause.String()
	}
	sb.WriteString(line + "\n")
	return sb.String()
}
