// Package terminal runs the Memory Game as a Bubble Tea program.
//
// Cards can be flipped with the mouse or by moving a cursor with the
// keyboard. Frames are delivered on input and, while the game asks for
// redraws, by a tick chain so the cooldown keeps running without input.
package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wricardo/memory-game/game/board"
	"github.com/wricardo/memory-game/game/engine"
	"github.com/wricardo/memory-game/game/session"
)

// Header lines above the grid: title, status, blank
const headerLines = 3

// Layout is the grid geometry in terminal cells. A tile is its content
// width plus a border on each side; tiles are joined with one space.
var Layout = board.Layout{
	Columns:    board.Columns,
	TileWidth:  tileContentWidth + 2,
	TileHeight: 3,
	GapX:       1,
	GapY:       0,
	OriginX:    0,
	OriginY:    headerLines,
}

// Model is the Bubble Tea model for one game session
type Model struct {
	session *session.Session
	keys    KeyMap
	help    help.Model
	frame   engine.Frame
	cursor  int
	ticking bool
	width   int
	height  int
}

// NewModel creates a terminal model driving sess
func NewModel(sess *session.Session) Model {
	return Model{
		session: sess,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		frame:   sess.Last(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.ticking = false
		return m.advance()

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		idx, ok := Layout.TileAt(msg.X, msg.Y, len(m.frame.Faces))
		if !ok {
			return m, nil
		}
		m.cursor = idx
		m.session.Click(idx)
		return m.advance()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.frame.Faces)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.New):
		m.frame = m.session.NewGame()
		m.cursor = 0
		return m, m.scheduleTick()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Flip):
		m.session.Click(m.cursor)
		return m.advance()

	case key.Matches(msg, m.keys.Up):
		if m.cursor-Layout.Columns >= 0 {
			m.cursor -= Layout.Columns
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+Layout.Columns < n {
			m.cursor += Layout.Columns
		}
	case key.Matches(msg, m.keys.Left):
		if col, _ := Layout.Cell(m.cursor); col > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if !Layout.EndsRow(m.cursor) && m.cursor+1 < n {
			m.cursor++
		}
	}

	return m, nil
}

// advance runs one frame and keeps a single tick chain alive while the
// game requests redraws
func (m Model) advance() (tea.Model, tea.Cmd) {
	m.frame = m.session.Advance()
	cmd := m.scheduleTick()
	return m, cmd
}

func (m *Model) scheduleTick() tea.Cmd {
	if !m.frame.Redraw || m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd()
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("🧠 Memory Game"))
	b.WriteString("\n")
	status := fmt.Sprintf("Moves: %d", m.frame.Moves)
	b.WriteString(StatusStyle.Render(status))
	if m.frame.Cooldown > 0 {
		b.WriteString("  ")
		b.WriteString(CooldownStyle.Render("resolving…"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	if m.frame.Won {
		b.WriteString("\n")
		b.WriteString(WinStyle.Render("🎉 You Win! 🎉"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderGrid() string {
	var rows []string
	var tiles []string

	for _, face := range m.frame.Faces {
		if len(tiles) > 0 {
			tiles = append(tiles, strings.Repeat(" ", Layout.GapX))
		}
		tiles = append(tiles, m.renderTile(face))

		if Layout.EndsRow(face.Index) || face.Index == len(m.frame.Faces)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
			tiles = nil
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderTile(face engine.Face) string {
	style := HiddenTileStyle
	switch face.State {
	case engine.Revealed:
		style = RevealedTileStyle
	case engine.Matched:
		style = MatchedTileStyle
	}
	if face.Index == m.cursor && !m.frame.Won {
		style = CursorTileStyle
	}
	return style.Render(face.Label)
}
