package tui

import (
	"strings"

	"github.com/tinytelemetry/tally/internal/engine"

	"github.com/charmbracelet/lipgloss"
)

// View renders the calculator page.
func (m *CalculatorModel) View(width, height int) string {
	m.width = width
	m.height = height

	if width <= 0 || height <= 0 {
		return "Initializing..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		return modal.View(width, height)
	}

	if width < minWidth || height < minHeight {
		return "Terminal too small. Resize to at least 35x21."
	}

	st := m.eng.State()

	widget := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderBranding(),
		m.renderDisplay(st),
		m.renderKeypad(st),
	)

	body := lipgloss.NewStyle().
		MarginLeft(marginX).
		MarginTop(marginY).
		Render(widget)

	// Pin the status line to the bottom row.
	gap := height - lipgloss.Height(body) - 1
	if gap < 0 {
		gap = 0
	}

	return body + strings.Repeat("\n", gap+1) + m.renderStatusLine(st)
}

// renderBranding renders "Tally" with the skin's brand gradient.
func (m *CalculatorModel) renderBranding() string {
	chars := []string{"T", "a", "l", "l", "y"}
	colors := activeSkin.Brand

	var b strings.Builder
	for i, ch := range chars {
		color := colors[i%len(colors)]
		b.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(ch))
	}
	return b.String()
}

// renderDisplay renders the bordered display box: pending operator indicator
// on the left, the display text right-aligned.
func (m *CalculatorModel) renderDisplay(st engine.State) string {
	inner := widgetWidth - 2

	indicator := " "
	if st.HasPending {
		indicator = st.PendingOperator.String()
	}

	text := st.Display
	if maxText := inner - 2; lipgloss.Width(text) > maxText {
		// Percent output is uncapped; keep the layout intact regardless.
		text = text[:maxText]
	}

	pad := inner - lipgloss.Width(indicator) - lipgloss.Width(text)
	if pad < 0 {
		pad = 0
	}

	textColor := activeSkin.Display
	if st.Errored {
		textColor = activeSkin.DisplayError
	}

	line := lipgloss.NewStyle().Foreground(activeSkin.ButtonAccent).Render(indicator) +
		strings.Repeat(" ", pad) +
		lipgloss.NewStyle().Foreground(textColor).Bold(true).Render(text)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(activeSkin.Border).
		Width(inner).
		Render(line)
}

// renderKeypad renders the button grid. The pending operator's button gets
// the active border so the selected operation stays visible while entering
// the right operand.
func (m *CalculatorModel) renderKeypad(st engine.State) string {
	rows := m.keypad.Rows()
	rendered := make([]string, 0, keypadRows)

	for _, row := range rows {
		cells := make([]string, 0, keypadCols*2-1)
		for i, b := range row {
			if i > 0 {
				cells = append(cells, strings.Repeat(" ", keypadGapX))
			}
			cells = append(cells, m.renderButton(b, st))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (m *CalculatorModel) renderButton(b Button, st engine.State) string {
	label := activeSkin.Button
	if b.Kind == ButtonOperator || b.Kind == ButtonEvaluate || b.Kind == ButtonClear {
		label = activeSkin.ButtonAccent
	}

	border := activeSkin.Border
	if b.Kind == ButtonOperator && st.HasPending && b.Op == st.PendingOperator {
		border = activeSkin.ActiveBorder
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(label).
		Width(buttonWidth - 2).
		Align(lipgloss.Center).
		Render(b.Label)
}

// renderStatusLine renders the context-sensitive help line at the bottom.
func (m *CalculatorModel) renderStatusLine(st engine.State) string {
	var status string
	switch {
	case st.Errored:
		status = "Division by zero • esc/c: Clear"
	default:
		status = "0-9 . + - * / enter • s: Sign • %: Percent • ?: Help • q: Quit"
	}

	return lipgloss.NewStyle().
		Foreground(activeSkin.Status).
		MarginLeft(marginX).
		Render(status)
}
