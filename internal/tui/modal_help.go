package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModal shows the keyboard table in a scrollable viewport.
type HelpModal struct {
	vp      viewport.Model
	content string
}

// NewHelpModal builds the help modal from the active key map, so the text
// can never drift from the actual bindings.
func NewHelpModal(keys KeyMap) *HelpModal {
	return &HelpModal{
		vp:      viewport.New(0, 0),
		content: helpContent(keys),
	}
}

func (h *HelpModal) ID() string { return "help" }

// Update closes on esc/help/quit keys and otherwise scrolls the viewport.
func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "?", "h", "q", "enter":
			return true, nil
		}
	}

	var cmd tea.Cmd
	h.vp, cmd = h.vp.Update(msg)
	return false, cmd
}

// View renders the modal centered inside a double border frame.
func (h *HelpModal) View(width, height int) string {
	modalWidth := width - 8
	modalHeight := height - 4

	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	h.vp.Width = contentWidth
	h.vp.Height = contentHeight
	h.vp.SetContent(h.content)

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(activeSkin.Border).
		Render(h.vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(activeSkin.ButtonAccent).
		Bold(true).
		Render("Keyboard & Mouse")

	statusBar := lipgloss.NewStyle().
		Foreground(activeSkin.Status).
		Render("up/down: Scroll | ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(activeSkin.ActiveBorder).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

// helpContent formats one line per binding, plus the mouse note.
func helpContent(keys KeyMap) string {
	line := func(b key.Binding) string {
		h := b.Help()
		return fmt.Sprintf("  %-12s - %s", h.Key, h.Desc)
	}

	sections := []string{
		"ENTRY:",
		line(keys.Digits),
		line(keys.Decimal),
		line(keys.Backspace),
		"",
		"OPERATIONS:",
		line(keys.Add),
		line(keys.Subtract),
		line(keys.Multiply),
		line(keys.Divide),
		line(keys.Evaluate),
		line(keys.Percent),
		line(keys.ToggleSign),
		line(keys.Clear),
		"",
		"GENERAL:",
		line(keys.Help),
		line(keys.Quit),
		line(keys.ForceQuit),
		"",
		"MOUSE:",
		"  Left click    - Press the keypad button under the pointer",
		"",
		"While the display shows Error, only Clear is accepted;",
		"every other key and button is ignored until you clear.",
	}

	return strings.Join(sections, "\n")
}
