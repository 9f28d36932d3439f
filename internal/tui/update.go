package tui

import (
	"github.com/tinytelemetry/tally/internal/engine"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages for the calculator page.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKeyPress(msg), nil

	case tea.MouseMsg:
		return m.handleMouseEvent(msg), nil
	}

	return nil, nil
}

// handleKeyPress dispatches key events: modal stack first, then the fixed
// key table. While the engine is errored, only clear-mapped keys (and
// quit/help) reach the engine; the rest are swallowed here.
func (m *CalculatorModel) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}

	// Modal on stack gets the event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return cmd
	}

	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		m.logger.Info("quit requested")
		return tea.Quit

	case key.Matches(msg, k.Help):
		m.PushModal(NewHelpModal(k))
		return nil

	case key.Matches(msg, k.Clear):
		m.eng.Clear()
		return nil
	}

	if m.eng.State().Errored {
		return nil
	}

	switch {
	case key.Matches(msg, k.Digits):
		m.eng.EnterDigit(msg.String()[0])

	case key.Matches(msg, k.Decimal):
		m.eng.EnterDecimalPoint()

	case key.Matches(msg, k.Add):
		m.eng.SelectOperator(engine.OpAdd)

	case key.Matches(msg, k.Subtract):
		m.eng.SelectOperator(engine.OpSubtract)

	case key.Matches(msg, k.Multiply):
		m.eng.SelectOperator(engine.OpMultiply)

	case key.Matches(msg, k.Divide):
		m.eng.SelectOperator(engine.OpDivide)

	case key.Matches(msg, k.Evaluate):
		m.eng.Evaluate()

	case key.Matches(msg, k.Percent):
		m.eng.Percent()

	case key.Matches(msg, k.ToggleSign):
		m.eng.ToggleSign()

	case key.Matches(msg, k.Backspace):
		m.eng.DeleteLast()
	}

	return nil
}

// handleMouseEvent resolves left clicks to keypad buttons. Wheel and motion
// events are ignored.
func (m *CalculatorModel) handleMouseEvent(msg tea.MouseMsg) tea.Cmd {
	// Modal on stack gets the mouse event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return cmd
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	b, ok := m.keypad.ButtonAt(msg.X-keypadOriginX, msg.Y-keypadOriginY)
	if !ok {
		return nil
	}
	return m.press(b)
}

// press dispatches a keypad button to the engine, applying the same
// errored-state swallowing rule as the keyboard path.
func (m *CalculatorModel) press(b Button) tea.Cmd {
	if m.eng.State().Errored && b.Kind != ButtonClear {
		return nil
	}

	switch b.Kind {
	case ButtonDigit:
		m.eng.EnterDigit(b.Digit)
	case ButtonDecimal:
		m.eng.EnterDecimalPoint()
	case ButtonOperator:
		m.eng.SelectOperator(b.Op)
	case ButtonEvaluate:
		m.eng.Evaluate()
	case ButtonClear:
		m.eng.Clear()
	case ButtonToggleSign:
		m.eng.ToggleSign()
	case ButtonPercent:
		m.eng.Percent()
	case ButtonBackspace:
		m.eng.DeleteLast()
	}

	return nil
}
