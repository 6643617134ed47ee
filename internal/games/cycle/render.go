package cycle

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/snake-cycle/internal/core"
	"github.com/vovakirdan/snake-cycle/internal/games/cycle/core"
)

const (
	hudHeight    = 2
	footerHeight = 3
)

// Render draws the HUD, the board, nearby hints and any overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.engine == nil {
		dst.DrawTextCentered(dst.Height()/2, "Could not load level")
		if g.loadErr != nil {
			dst.DrawTextCentered(dst.Height()/2+1, g.loadErr.Error())
		}
		return
	}

	grid := g.engine.Grid()
	if dst.Width() < grid.W+2 || dst.Height() < grid.H+hudHeight+footerHeight {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", grid.W+2, grid.H+hudHeight+footerHeight))
		return
	}

	g.drawHUD(dst)

	area := platformcore.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-footerHeight)
	board := area.Centered(grid.W, grid.H)
	g.drawBoard(dst, grid, board)
	g.drawHints(dst, grid, board.Bottom()+1)
	g.drawOverlay(dst)
}

// toScreen converts a board position to screen coordinates. Board y grows
// upward, screen y grows downward.
func toScreen(board platformcore.Rect, p core.Pos) (int, int) {
	return board.X + p.X, board.Y + board.H - 1 - p.Y
}

func (g *Game) drawHUD(dst *platformcore.Screen) {
	b := g.engine.Budget()
	left := fmt.Sprintf(" %s  %s", g.Title(), g.levelID)
	if g.levelIndex >= 0 {
		left = fmt.Sprintf(" %s  %d/%d %s", g.Title(), g.levelIndex+1, len(g.campaign), g.levelID)
	}
	dst.DrawTextColored(0, 0, left, platformcore.ColorBrightYellow)

	budget := fmt.Sprintf(" rewinds %d  steps %d", b.Total, b.Individual)
	budgetColor := platformcore.ColorWhite
	if b.Total <= 0 || b.Individual <= 0 {
		budgetColor = platformcore.ColorBrightRed
	}
	dst.DrawTextColored(0, 1, budget, budgetColor)

	line := "  > " + g.keys.String()
	if g.keys.String() == "" && g.message != "" {
		line = "  " + g.message
	}
	dst.DrawTextColored(utf8.RuneCountInString(budget), 1, line, platformcore.ColorGray)
}

func (g *Game) drawBoard(dst *platformcore.Screen, grid *core.Grid, board platformcore.Rect) {
	spikesHot := g.engine.SpikesActive()
	latched := make(map[rune]bool)
	for _, ch := range g.engine.DoorsOpen() {
		latched[ch] = true
	}

	grid.Each(func(p core.Pos, t core.Tile) {
		x, y := toScreen(board, p)
		if t.Top.Kind == core.TopSnake {
			// Segments are drawn below; show the floor under them otherwise.
			t.Top = core.Top{}
		}
		r, c := tileStyle(t, spikesHot, latched)
		dst.SetColored(x, y, r, c)
	})

	for _, gh := range g.engine.Ghosts() {
		if gh.Alpha() <= 0 {
			continue
		}
		x, y := toScreen(board, gh.Pos)
		dst.SetColored(x, y, '·', platformcore.ColorGray)
	}

	for _, seg := range g.engine.Segments() {
		x, y := toScreen(board, seg.Pos)
		switch {
		case seg.Movable && seg.Transit != nil:
			dst.SetColored(x, y, '○', seg.Color)
		case seg.Movable:
			dst.SetColored(x, y, '@', seg.Color)
		default:
			dst.SetColored(x, y, 'o', seg.Color)
		}
	}
}

func tileStyle(t core.Tile, spikesHot bool, latched map[rune]bool) (rune, platformcore.Color) {
	switch t.Top.Kind {
	case core.TopWall:
		if t.Bottom.Kind == core.BottomHint {
			return '?', platformcore.ColorBrightBlue
		}
		return '█', platformcore.ColorGray
	case core.TopDoor:
		return t.Top.Channel, platformcore.ColorRed
	}

	switch t.Bottom.Kind {
	case core.BottomPlate:
		if latched[t.Bottom.Channel] {
			return core.TileGlyph(t), platformcore.ColorGray
		}
		return core.TileGlyph(t), platformcore.ColorCyan
	case core.BottomExit:
		return '⌂', platformcore.ColorBrightYellow
	case core.BottomSpike:
		if spikesHot {
			return '▲', platformcore.ColorBrightRed
		}
		return '△', platformcore.ColorGray
	case core.BottomAntiDoor:
		return '░', platformcore.ColorMagenta
	}
	return ' ', platformcore.ColorDefault
}

// drawHints shows the text of hint tiles next to the head.
func (g *Game) drawHints(dst *platformcore.Screen, grid *core.Grid, y int) {
	head, ok := g.engine.Head()
	if !ok {
		return
	}
	for dy := 1; dy >= -1; dy-- {
		for dx := -1; dx <= 1; dx++ {
			t := grid.At(core.P(head.X+dx, head.Y+dy))
			if t.Bottom.Kind != core.BottomHint || y >= dst.Height() {
				continue
			}
			dst.DrawTextCentered(y, t.Bottom.Text)
			y++
		}
	}
}

func (g *Game) drawOverlay(dst *platformcore.Screen) {
	var lines []string
	switch {
	case g.finished:
		lines = []string{"CAMPAIGN COMPLETE", fmt.Sprintf("%d levels cleared", g.cleared), "Enter: menu"}
	case g.paused:
		lines = []string{"PAUSED", "P: resume  Esc: menu"}
	case g.status == core.StatusWon:
		lines = []string{"LEVEL CLEARED", "Enter: next level"}
	case g.status == core.StatusDead:
		lines = []string{"THE SNAKE IS LOST", g.cause.String(), "Enter: retry  Esc: menu"}
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := platformcore.NewRect(0, 0, dst.Width(), dst.Height()).Centered(width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}
