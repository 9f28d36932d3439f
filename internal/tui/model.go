package tui

import (
	"log/slog"

	"github.com/tinytelemetry/tally/internal/engine"

	tea "github.com/charmbracelet/bubbletea"
)

// Fixed widget placement. The calculator is anchored top-left with a small
// margin, which keeps mouse hit-testing a pure function of the grid geometry.
const (
	marginX = 2
	marginY = 1

	displayHeight = 3 // bordered display box

	keypadOriginX = marginX
	keypadOriginY = marginY + 1 + displayHeight // branding line, then display

	minWidth  = widgetWidth + 2*marginX
	minHeight = keypadOriginY + keypadRows*buttonHeight + 1 // + status line
)

// CalculatorModel is the calculator page: one engine instance, the keypad
// grid, and a modal stack for the help screen. Every gesture is forwarded to
// the engine and the state re-read on render, so the model itself holds no
// arithmetic state.
type CalculatorModel struct {
	eng    *engine.Engine
	keys   KeyMap
	keypad Keypad
	logger *slog.Logger

	modalStack []Modal

	width  int
	height int
}

// NewCalculatorModel creates the calculator page around an engine instance.
func NewCalculatorModel(eng *engine.Engine, logger *slog.Logger) *CalculatorModel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CalculatorModel{
		eng:    eng,
		keys:   DefaultKeyMap(),
		keypad: NewKeypad(),
		logger: logger,
	}
}

func (m *CalculatorModel) ID() string { return "calculator" }

func (m *CalculatorModel) Init() tea.Cmd { return nil }

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *CalculatorModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *CalculatorModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *CalculatorModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (m *CalculatorModel) HasModal() bool {
	return len(m.modalStack) > 0
}
