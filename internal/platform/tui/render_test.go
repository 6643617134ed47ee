package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-cycle/internal/core"
)

// plainRenderer writes to a non-terminal so styles render without escapes.
func plainRenderer() *ScreenRenderer {
	return NewScreenRenderer(lipgloss.NewRenderer(io.Discard))
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, '@', core.ColorBrightGreen)
	s.SetColored(1, 0, 'o', core.ColorBrightGreen)
	s.SetColored(2, 0, 'Z', core.ColorRed)
	s.DrawText(0, 1, "ab")

	got := plainRenderer().RenderScreen(s)
	if got != s.String() {
		t.Errorf("got %q, want %q", got, s.String())
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("got %q", got)
	}
	if got := centerText("abcdef", 3); got != "abcdef" {
		t.Errorf("got %q", got)
	}
	if got := spaced("Snake"); got != "S N A K E" {
		t.Errorf("got %q", got)
	}
}

func TestLevelMenuView(t *testing.T) {
	m := NewLevelMenuModel("Snake Cycle", []string{"map_1", "map_2"}, 40, 12, plainRenderer())
	view := m.View()
	for _, want := range []string{"S N A K E", "> Campaign", "map_1", "map_2"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q:\n%s", want, view)
		}
	}
}
