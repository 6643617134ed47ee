// Package levels parses .game_map board files and loads them from disk or
// from the embedded campaign. This package depends on core but core does
// not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/snake-cycle/internal/games/cycle/core"
)

// Separator splits the board from the hint table.
const Separator = "SPLIT_HERE"

// MaxHints is the size of the hint table.
const MaxHints = 15

var (
	ErrEmptyMap      = errors.New("map has no rows")
	ErrRaggedRows    = errors.New("map rows differ in length")
	ErrNoHead        = core.ErrNoHead
	ErrMultipleHeads = core.ErrMultipleHeads
)

// MapError describes why a map could not be loaded.
type MapError struct {
	Level string
	Line  int // 1-based board line, 0 when not tied to a line
	Err   error
}

func (e *MapError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("map %s: line %d: %v", e.Level, e.Line, e.Err)
	}
	return fmt.Sprintf("map %s: %v", e.Level, e.Err)
}

func (e *MapError) Unwrap() error {
	return e.Err
}

// Level is a parsed map.
type Level struct {
	ID       string
	Grid     *core.Grid
	Head     core.Pos
	Hints    [MaxHints]string
	Warnings []string
	FilePath string
}

// Hint returns the hint text at i, if present.
func (l *Level) Hint(i int) (string, bool) {
	if i < 0 || i >= MaxHints || l.Hints[i] == "" {
		return "", false
	}
	return l.Hints[i], true
}

// Parse reads a map. Problems that only degrade the level (unknown hint
// lines, missing hint text) are collected in Warnings; structural problems
// return a *MapError.
func Parse(id string, data []byte) (*Level, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	board, table, _ := strings.Cut(text, Separator)

	lvl := &Level{ID: id}
	lvl.parseHints(table)

	rows := boardRows(board)
	if len(rows) == 0 {
		return nil, &MapError{Level: id, Err: ErrEmptyMap}
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, &MapError{Level: id, Line: i + 1, Err: ErrRaggedRows}
		}
	}

	height := len(rows)
	lvl.Grid = core.NewGrid(width, height)
	heads := 0
	for i, row := range rows {
		// The last line of the file is y=0.
		y := height - 1 - i
		for x, glyph := range row {
			tile, isHead, warn := lvl.tileFor(glyph)
			if warn != "" {
				lvl.Warnings = append(lvl.Warnings, fmt.Sprintf("line %d col %d: %s", i+1, x+1, warn))
			}
			if isHead {
				heads++
				if heads > 1 {
					return nil, &MapError{Level: id, Line: i + 1, Err: ErrMultipleHeads}
				}
				lvl.Head = core.P(x, y)
			}
			lvl.Grid.Set(core.P(x, y), tile)
		}
	}
	if heads == 0 {
		return nil, &MapError{Level: id, Err: ErrNoHead}
	}
	return lvl, nil
}

// boardRows returns the board lines with surrounding empty lines removed.
// Lines made of spaces are rows of floor and are kept.
func boardRows(board string) [][]rune {
	lines := strings.Split(board, "\n")
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = []rune(l)
	}
	return rows
}

func (l *Level) parseHints(table string) {
	for n, line := range strings.Split(table, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "::")
		if !ok {
			l.Warnings = append(l.Warnings, fmt.Sprintf("hint line %d: missing '::'", n))
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || idx < 0 || idx >= MaxHints {
			l.Warnings = append(l.Warnings, fmt.Sprintf("hint line %d: bad index %q", n, key))
			continue
		}
		l.Hints[idx] = value
	}
}

// antiDoorChannels maps anti-door glyphs to the door channel they follow.
var antiDoorChannels = map[rune]rune{
	'A': 'Z',
	'S': 'X',
	'D': 'C',
	'F': 'V',
	'G': 'B',
	'H': 'N',
	'J': 'M',
}

func (l *Level) tileFor(glyph rune) (tile core.Tile, isHead bool, warn string) {
	switch {
	case strings.ContainsRune("zxcvbnm", glyph):
		return core.Tile{Bottom: core.Bottom{Kind: core.BottomPlate, Channel: glyph - 'a' + 'A'}}, false, ""
	case strings.ContainsRune("ZXCVBNM", glyph):
		return core.Tile{Top: core.Top{Kind: core.TopDoor, Channel: glyph}}, false, ""
	case antiDoorChannels[glyph] != 0:
		return core.Tile{Bottom: core.Bottom{Kind: core.BottomAntiDoor, Channel: antiDoorChannels[glyph]}}, false, ""
	case glyph >= '0' && glyph <= '9':
		text, ok := l.Hint(int(glyph - '0'))
		if !ok {
			return core.Tile{}, false, fmt.Sprintf("missing hint text for %q", glyph)
		}
		return core.Tile{
			Top:    core.Top{Kind: core.TopWall},
			Bottom: core.Bottom{Kind: core.BottomHint, Text: text},
		}, false, ""
	}

	switch glyph {
	case '#':
		return core.Tile{Top: core.Top{Kind: core.TopWall}}, false, ""
	case '%':
		return core.Tile{Top: core.Top{Kind: core.TopSnake}}, true, ""
	case '$':
		return core.Tile{Bottom: core.Bottom{Kind: core.BottomSpike}}, false, ""
	case '|':
		return core.Tile{Bottom: core.Bottom{Kind: core.BottomExit}}, false, ""
	default:
		return core.Tile{}, false, ""
	}
}
