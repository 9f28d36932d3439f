package tui

import tea "github.com/charmbracelet/bubbletea"

// Modal is a full-screen overlay. Update returns pop=true when the modal
// wants to close; the owning page removes it from the stack.
type Modal interface {
	ID() string
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	View(width, height int) string
}
