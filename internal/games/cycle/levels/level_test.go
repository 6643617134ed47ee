package levels_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/snake-cycle/internal/games/cycle/core"
	"github.com/vovakirdan/snake-cycle/internal/games/cycle/levels"
)

func TestParseGlyphs(t *testing.T) {
	data := "#%$|zZA0\nSPLIT_HERE\n0::read me\n"
	lvl, err := levels.Parse("glyphs", []byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if lvl.Grid.W != 8 || lvl.Grid.H != 1 {
		t.Fatalf("size = %dx%d, want 8x1", lvl.Grid.W, lvl.Grid.H)
	}

	tests := []struct {
		x    int
		want core.Tile
	}{
		{0, core.Tile{Top: core.Top{Kind: core.TopWall}}},
		{1, core.Tile{Top: core.Top{Kind: core.TopSnake}}},
		{2, core.Tile{Bottom: core.Bottom{Kind: core.BottomSpike}}},
		{3, core.Tile{Bottom: core.Bottom{Kind: core.BottomExit}}},
		{4, core.Tile{Bottom: core.Bottom{Kind: core.BottomPlate, Channel: 'Z'}}},
		{5, core.Tile{Top: core.Top{Kind: core.TopDoor, Channel: 'Z'}}},
		{6, core.Tile{Bottom: core.Bottom{Kind: core.BottomAntiDoor, Channel: 'Z'}}},
		{7, core.Tile{Top: core.Top{Kind: core.TopWall}, Bottom: core.Bottom{Kind: core.BottomHint, Text: "read me"}}},
	}
	for _, tt := range tests {
		if got := lvl.Grid.At(core.P(tt.x, 0)); got != tt.want {
			t.Errorf("x=%d: got %+v, want %+v", tt.x, got, tt.want)
		}
	}
	if lvl.Head != core.P(1, 0) {
		t.Errorf("head = %v, want (1,0)", lvl.Head)
	}
}

func TestParseAntiDoorChannels(t *testing.T) {
	lvl, err := levels.Parse("anti", []byte("%ASDFGHJ"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := "ZXCVBNM"
	for i, ch := range want {
		tile := lvl.Grid.At(core.P(i+1, 0))
		if tile.Bottom.Kind != core.BottomAntiDoor || tile.Bottom.Channel != ch {
			t.Errorf("x=%d: got %+v, want anti-door %c", i+1, tile.Bottom, ch)
		}
	}
}

func TestParseRowsBottomUp(t *testing.T) {
	lvl, err := levels.Parse("rows", []byte("#  \n%  \n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if lvl.Head != core.P(0, 0) {
		t.Errorf("head = %v, want (0,0)", lvl.Head)
	}
	if lvl.Grid.At(core.P(0, 1)).Top.Kind != core.TopWall {
		t.Error("first line should be the top row")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", "", levels.ErrEmptyMap},
		{"only hints", "SPLIT_HERE\n0::hi\n", levels.ErrEmptyMap},
		{"ragged", "%  \n# \n", levels.ErrRaggedRows},
		{"no head", "#  |\n", levels.ErrNoHead},
		{"two heads", "% %\n", levels.ErrMultipleHeads},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := levels.Parse(tt.name, []byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			var mapErr *levels.MapError
			if !errors.As(err, &mapErr) {
				t.Fatalf("expected *MapError, got %T", err)
			}
			if mapErr.Level != tt.name {
				t.Errorf("level = %q, want %q", mapErr.Level, tt.name)
			}
		})
	}
}

func TestParseMissingHintDegrades(t *testing.T) {
	lvl, err := levels.Parse("hint", []byte("%3\nSPLIT_HERE\n1::other\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := lvl.Grid.At(core.P(1, 0)); got != (core.Tile{}) {
		t.Errorf("missing hint should be empty floor, got %+v", got)
	}
	if len(lvl.Warnings) != 1 {
		t.Errorf("warnings = %v, want one", lvl.Warnings)
	}
}

func TestParseHintTable(t *testing.T) {
	data := "%\nSPLIT_HERE\n0::zero\nnot a hint\n14::last\n15::too far\nx::bad\n2::a::b\n"
	lvl, err := levels.Parse("hints", []byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if s, ok := lvl.Hint(0); !ok || s != "zero" {
		t.Errorf("hint 0 = %q, %v", s, ok)
	}
	if s, ok := lvl.Hint(14); !ok || s != "last" {
		t.Errorf("hint 14 = %q, %v", s, ok)
	}
	if s, ok := lvl.Hint(2); !ok || s != "a::b" {
		t.Errorf("hint 2 = %q, %v", s, ok)
	}
	if _, ok := lvl.Hint(15); ok {
		t.Error("index 15 is out of range")
	}
	if len(lvl.Warnings) != 3 {
		t.Errorf("warnings = %v, want three", lvl.Warnings)
	}
}
