package tui

import (
	"testing"

	"github.com/tinytelemetry/tally/internal/engine"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() *CalculatorModel {
	return NewCalculatorModel(engine.New(), nil)
}

func pressRunes(m *CalculatorModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func pressKey(m *CalculatorModel, t tea.KeyType) {
	m.Update(tea.KeyMsg{Type: t})
}

func display(m *CalculatorModel) string {
	return m.eng.State().Display
}

func TestKeyPress_ChainedCalculation(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	pressRunes(m, "3+4*2")
	pressKey(m, tea.KeyEnter)

	if got := display(m); got != "14" {
		t.Fatalf("display = %q, want %q (left-to-right chaining)", got, "14")
	}
}

func TestKeyPress_CommaIsDecimalAlias(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	pressRunes(m, "1,5")

	if got := display(m); got != "1.5" {
		t.Fatalf("display = %q, want %q", got, "1.5")
	}
}

func TestKeyPress_EqualsRuneEvaluates(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	pressRunes(m, "9/2=")

	if got := display(m); got != "4.5" {
		t.Fatalf("display = %q, want %q", got, "4.5")
	}
}

func TestKeyPress_SignAndPercent(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	pressRunes(m, "50%")
	if got := display(m); got != "0.5" {
		t.Fatalf("display = %q, want %q", got, "0.5")
	}

	pressRunes(m, "s")
	if got := display(m); got != "-0.5" {
		t.Fatalf("display = %q, want %q", got, "-0.5")
	}
}

func TestKeyPress_BackspaceDeletesLast(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	pressRunes(m, "123")
	pressKey(m, tea.KeyBackspace)

	if got := display(m); got != "12" {
		t.Fatalf("display = %q, want %q", got, "12")
	}
}

func TestKeyPress_ErroredSwallowsAllButClear(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	pressRunes(m, "8/0")
	pressKey(m, tea.KeyEnter)

	if got := display(m); got != engine.ErrorText {
		t.Fatalf("display = %q, want %q", got, engine.ErrorText)
	}

	// Adapter must swallow everything except clear (and quit/help).
	pressRunes(m, "5+.%s")
	pressKey(m, tea.KeyEnter)
	pressKey(m, tea.KeyBackspace)
	if got := display(m); got != engine.ErrorText {
		t.Fatalf("display = %q after input while errored, want %q", got, engine.ErrorText)
	}

	pressKey(m, tea.KeyEsc)
	if got := display(m); got != "0" {
		t.Fatalf("display = %q after clear, want %q", got, "0")
	}
}

func TestKeyPress_LowercaseCClears(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	pressRunes(m, "42c")

	if got := display(m); got != "0" {
		t.Fatalf("display = %q, want %q", got, "0")
	}
}

func TestKeyPress_QuitReturnsQuitCmd(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	cmd, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("cmd() = %T, want tea.QuitMsg", cmd())
	}
}

func TestHelpModal_OpensAndCloses(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	pressRunes(m, "?")
	if !m.HasModal() {
		t.Fatal("expected help modal on stack after ?")
	}

	// Keys are routed to the modal, not the engine, while it is open.
	pressRunes(m, "5")
	if got := display(m); got != "0" {
		t.Fatalf("display = %q, want keys to be captured by the modal", got)
	}

	pressKey(m, tea.KeyEsc)
	if m.HasModal() {
		t.Fatal("expected help modal to close on esc")
	}
}

func TestMouseClick_PressesKeypadButton(t *testing.T) {
	t.Parallel()

	m := newTestModel()

	// Button "7" is row 1, col 0: x in [keypadOriginX, +buttonWidth),
	// y in [keypadOriginY+buttonHeight, +2*buttonHeight).
	m.Update(tea.MouseMsg{
		X:      keypadOriginX + 1,
		Y:      keypadOriginY + buttonHeight + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if got := display(m); got != "7" {
		t.Fatalf("display = %q, want %q after clicking the 7 button", got, "7")
	}
}

func TestMouseClick_ColumnGapMisses(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m.Update(tea.MouseMsg{
		X:      keypadOriginX + buttonWidth, // the 1-cell gap after col 0
		Y:      keypadOriginY + buttonHeight + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if got := display(m); got != "0" {
		t.Fatalf("display = %q, want gap clicks to be ignored", got)
	}
}

func TestMouseClick_ErroredOnlyClearButtonWorks(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	pressRunes(m, "8/0=")

	// Click "7" (row 1, col 0): swallowed while errored.
	m.Update(tea.MouseMsg{
		X:      keypadOriginX + 1,
		Y:      keypadOriginY + buttonHeight + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if got := display(m); got != engine.ErrorText {
		t.Fatalf("display = %q, want error state to hold against clicks", got)
	}

	// Click "C" (row 0, col 0): clears.
	m.Update(tea.MouseMsg{
		X:      keypadOriginX + 1,
		Y:      keypadOriginY + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if got := display(m); got != "0" {
		t.Fatalf("display = %q, want %q after clicking C", got, "0")
	}
}

func TestMouseWheel_Ignored(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m.Update(tea.MouseMsg{
		X:      keypadOriginX + 1,
		Y:      keypadOriginY + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelUp,
	})
	m.Update(tea.MouseMsg{
		X:      keypadOriginX + 1,
		Y:      keypadOriginY + 1,
		Action: tea.MouseActionMotion,
		Button: tea.MouseButtonNone,
	})

	if got := display(m); got != "0" {
		t.Fatalf("display = %q, want wheel and motion events to be ignored", got)
	}
}

func TestView_RendersDisplayAndStatus(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	pressRunes(m, "12+")

	out := m.View(80, 24)
	if out == "" {
		t.Fatal("empty view")
	}
	if !containsPlain(out, "12") {
		t.Fatalf("view does not contain display value:\n%s", out)
	}
	if !containsPlain(out, "Help") {
		t.Fatalf("view does not contain the status line:\n%s", out)
	}
}

func TestView_TooSmall(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	if out := m.View(20, 10); !containsPlain(out, "Terminal too small") {
		t.Fatalf("view = %q, want too-small notice", out)
	}
}
