package terminal

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wricardo/memory-game/game/session"
)

// Run starts the terminal UI and blocks until the player quits
func Run(sess *session.Session, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)

	p := tea.NewProgram(NewModel(sess), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}
