package terminal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval paces frames while the game asks for redraws
const frameInterval = time.Second / 60

// TickMsg is sent to deliver the next frame.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
