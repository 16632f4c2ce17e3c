package terminal

import "github.com/charmbracelet/lipgloss"

// One Dark palette
var (
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorRed       = lipgloss.Color("#E06C75")
	ColorGreen     = lipgloss.Color("#98C379")
	ColorYellow    = lipgloss.Color("#E5C07B")
	ColorBlue      = lipgloss.Color("#61AFEF")
	ColorMagenta   = lipgloss.Color("#C678DD")
	ColorBorder    = lipgloss.Color("#3F4451")
	ColorGold      = lipgloss.Color("#FFD700")
)

// Tile content is two cells of glyph centered in four
const tileContentWidth = 4

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary)

	CooldownStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Italic(true)

	tileBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(tileContentWidth).
			Align(lipgloss.Center)

	HiddenTileStyle   = tileBase.BorderForeground(ColorBorder)
	RevealedTileStyle = tileBase.BorderForeground(ColorYellow)
	MatchedTileStyle  = tileBase.BorderForeground(ColorGreen)
	CursorTileStyle   = tileBase.BorderForeground(ColorRed)

	WinStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)
)
