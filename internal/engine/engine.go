// Package engine implements the calculator state machine: digit entry,
// pending-operation tracking, chained left-to-right evaluation, and the
// division-by-zero error state. It is a pure in-memory state record with
// no I/O; the TUI layer renders its state and forwards gestures into it.
package engine

import "strconv"

// Op identifies an arithmetic operator.
type Op int

const (
	OpNone Op = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the display glyph for the operator.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	}
	return ""
}

// DisplayCap is the maximum number of significant characters in the display,
// not counting a leading minus sign or the decimal point.
const DisplayCap = 9

// ErrorText is shown after a division by zero until Clear.
const ErrorText = "Error"

// State is the observable calculator state. The TUI re-reads it after every
// operation; operations replace it atomically (a snapshot never shows a
// half-applied transition).
type State struct {
	Display            string
	PendingOperand     float64
	PendingOperator    Op // OpNone when no operation is pending
	HasPending         bool
	AwaitingFreshEntry bool
	Errored            bool
}

// Engine owns a single State and applies transitions to it. It is not safe
// for concurrent use; the Bubble Tea event loop serializes all calls.
type Engine struct {
	state State
}

// New returns an engine in the initial state: display "0", nothing pending.
func New() *Engine {
	return &Engine{state: State{Display: "0"}}
}

// State returns a snapshot of the current state.
func (e *Engine) State() State {
	return e.state
}

// EnterDigit appends digit d ('0'..'9') to the current numeral, or starts a
// new numeral after an operator or evaluation. Input past the display cap is
// silently dropped.
func (e *Engine) EnterDigit(d byte) {
	if e.state.Errored || d < '0' || d > '9' {
		return
	}
	if e.state.AwaitingFreshEntry {
		e.state.Display = string(d)
		e.state.AwaitingFreshEntry = false
		return
	}
	if significantLen(e.state.Display) >= DisplayCap {
		return
	}
	if e.state.Display == "0" {
		e.state.Display = string(d)
	} else {
		e.state.Display += string(d)
	}
}

// EnterDecimalPoint appends the decimal separator. A numeral holds at most
// one; further presses are no-ops.
func (e *Engine) EnterDecimalPoint() {
	if e.state.Errored {
		return
	}
	if e.state.AwaitingFreshEntry {
		e.state.Display = "0."
		e.state.AwaitingFreshEntry = false
		return
	}
	if containsDecimalPoint(e.state.Display) {
		return
	}
	if significantLen(e.state.Display) >= DisplayCap {
		return
	}
	e.state.Display += "."
}

// SelectOperator captures the display value as the left operand of op. If an
// operation is already pending and a number has been entered since, the
// pending operation is folded first, giving strict left-to-right chaining:
// 3 + 4 × 2 = is (3+4)*2, not 3+(4*2).
func (e *Engine) SelectOperator(op Op) {
	if e.state.Errored || op == OpNone {
		return
	}
	if e.state.HasPending && !e.state.AwaitingFreshEntry {
		e.Evaluate()
		if e.state.Errored {
			return
		}
	}
	e.state.PendingOperand = e.displayValue()
	e.state.PendingOperator = op
	e.state.HasPending = true
	e.state.AwaitingFreshEntry = true
}

// Evaluate folds the pending operation with the display as the right operand.
// Division by zero moves the engine to the error state instead of producing a
// value; everything except Clear is then a no-op until the user clears.
func (e *Engine) Evaluate() {
	if e.state.Errored || !e.state.HasPending {
		return
	}

	prev := e.state.PendingOperand
	current := e.displayValue()

	var result float64
	switch e.state.PendingOperator {
	case OpAdd:
		result = prev + current
	case OpSubtract:
		result = prev - current
	case OpMultiply:
		result = prev * current
	case OpDivide:
		if current == 0 {
			e.state = State{
				Display:            ErrorText,
				Errored:            true,
				AwaitingFreshEntry: true,
			}
			return
		}
		result = prev / current
	default:
		return
	}

	e.state.Display = formatResult(result)
	e.state.PendingOperand = 0
	e.state.PendingOperator = OpNone
	e.state.HasPending = false
	e.state.AwaitingFreshEntry = true
}

// Clear resets to the initial state. It is the only transition out of the
// error state.
func (e *Engine) Clear() {
	e.state = State{Display: "0"}
}

// ToggleSign flips the sign of the current numeral. "0" keeps its sign.
func (e *Engine) ToggleSign() {
	if e.state.Errored || e.state.Display == "0" {
		return
	}
	if e.state.Display[0] == '-' {
		e.state.Display = e.state.Display[1:]
	} else {
		e.state.Display = "-" + e.state.Display
	}
}

// Percent replaces the display with its value divided by 100, rendered with
// the default shortest-form conversion (the display cap does not apply here).
func (e *Engine) Percent() {
	if e.state.Errored {
		return
	}
	e.state.Display = strconv.FormatFloat(e.displayValue()/100, 'f', -1, 64)
}

// DeleteLast removes the trailing character of the numeral being entered,
// collapsing to "0" when nothing remains. It does not edit results or the
// error text.
func (e *Engine) DeleteLast() {
	if e.state.Errored || e.state.AwaitingFreshEntry {
		return
	}
	d := e.state.Display[:len(e.state.Display)-1]
	if d == "" || d == "-" || d == "-0" {
		d = "0"
	}
	e.state.Display = d
}

// displayValue parses the display as a float64. The display is always a
// valid numeral outside the error state, which every caller guards against.
func (e *Engine) displayValue() float64 {
	v, err := strconv.ParseFloat(e.state.Display, 64)
	if err != nil {
		return 0
	}
	return v
}
