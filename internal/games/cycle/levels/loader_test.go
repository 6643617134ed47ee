package levels_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-cycle/internal/games/cycle/core"
	"github.com/vovakirdan/snake-cycle/internal/games/cycle/levels"
)

func TestCampaignMapsLoad(t *testing.T) {
	l := levels.Campaign()
	l.Logger = log.New(io.Discard)

	ids, err := l.ListIDs()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) == 0 {
		t.Fatal("no campaign maps embedded")
	}

	all, err := l.LoadAll()
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(all) != len(ids) {
		t.Fatalf("loaded %d maps, listed %d", len(all), len(ids))
	}
	for i, lvl := range all {
		if lvl.ID != ids[i] {
			t.Errorf("order mismatch at %d: %s vs %s", i, lvl.ID, ids[i])
		}
		if len(lvl.Warnings) != 0 {
			t.Errorf("%s: unexpected warnings %v", lvl.ID, lvl.Warnings)
		}
		if lvl.Grid.Count(func(tile core.Tile) bool { return tile.Bottom.Kind == core.BottomExit }) == 0 {
			t.Errorf("%s has no exit", lvl.ID)
		}
	}
	if ids[0] != "map_1" {
		t.Errorf("first map = %s, want map_1", ids[0])
	}
}

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"map_10.game_map": {Data: []byte("%|")},
		"map_2.game_map":  {Data: []byte("% |")},
		"map_3.game_map":  {Data: []byte("##\n#")},
		"notes.txt":       {Data: []byte("ignored")},
	}
	l := levels.NewFSLoader(fsys)
	l.Logger = log.New(io.Discard)

	all, err := l.LoadAll()
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("loaded %d maps, want 2", len(all))
	}
	if all[0].ID != "map_2" || all[1].ID != "map_10" {
		t.Errorf("order = %s, %s; want map_2, map_10", all[0].ID, all[1].ID)
	}
}

func TestLoaderFromDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "map_1.game_map"), []byte("%|\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := levels.NewLoader(dir)
	lvl, err := l.LoadByID("map_1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lvl.FilePath != "map_1.game_map" {
		t.Errorf("path = %q", lvl.FilePath)
	}

	if _, err := l.LoadByID("map_9"); err == nil {
		t.Error("expected error for missing map")
	}
}

func TestNextID(t *testing.T) {
	tests := []struct {
		id   string
		want string
		ok   bool
	}{
		{"map_1", "map_2", true},
		{"map_9", "map_10", true},
		{"maps/map_3", "maps/map_4", true},
		{"intro", "", false},
	}
	for _, tt := range tests {
		got, ok := levels.NextID(tt.id)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NextID(%q) = %q, %v; want %q, %v", tt.id, got, ok, tt.want, tt.ok)
		}
	}
}
