package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// campaignItem is the first menu entry; it starts at the first campaign level.
const campaignItem = "Campaign"

// LevelChoice is the result of the level menu. An empty Level means the
// campaign start.
type LevelChoice struct {
	Level string
}

// LevelMenuModel lets the player pick where to start.
type LevelMenuModel struct {
	title     string
	items     []string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	renderer  *ScreenRenderer
	selected  *LevelChoice
	quitting  bool
}

// NewLevelMenuModel creates a menu listing the campaign entry followed by levels.
func NewLevelMenuModel(title string, levels []string, width, height int, renderer *ScreenRenderer) LevelMenuModel {
	if renderer == nil {
		renderer = NewScreenRenderer(nil)
	}
	items := make([]string, 0, len(levels)+1)
	items = append(items, campaignItem)
	items = append(items, levels...)
	return LevelMenuModel{
		title:     title,
		items:     items,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		renderer:  renderer,
	}
}

// Init initializes the menu model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		choice := LevelChoice{}
		if m.cursor > 0 {
			choice.Level = m.items[m.cursor]
		}
		m.selected = &choice
	}
	return m, nil
}

// View renders the menu.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.renderer.Title.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderer.Dim.Render("Select a level"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item
		if i == m.cursor {
			line = m.renderer.Cursor.Render("> " + item)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.renderer.Dim.Render("↑/↓: Navigate  |  Enter: Play  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen level, or nil if none was chosen yet.
func (m LevelMenuModel) Selected() *LevelChoice {
	return m.selected
}

// IsQuitting returns true if the user asked to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width. Styled text is measured by
// its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// spaced turns "Snake Cycle" into "S N A K E   C Y C L E".
func spaced(title string) string {
	runes := []rune(strings.ToUpper(title))
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
