package tui

import "github.com/tinytelemetry/tally/internal/engine"

// Keypad geometry. Buttons are bordered cells laid out in a fixed grid, so a
// mouse click resolves to a button with integer arithmetic only.
const (
	buttonWidth  = 7 // including border
	buttonHeight = 3 // including border
	keypadCols   = 4
	keypadRows   = 5
	keypadGapX   = 1

	widgetWidth = keypadCols*buttonWidth + (keypadCols-1)*keypadGapX
)

// ButtonKind identifies which engine operation a button dispatches.
type ButtonKind int

const (
	ButtonDigit ButtonKind = iota
	ButtonDecimal
	ButtonOperator
	ButtonEvaluate
	ButtonClear
	ButtonToggleSign
	ButtonPercent
	ButtonBackspace
)

// Button is one keypad cell.
type Button struct {
	Label string
	Kind  ButtonKind
	Digit byte      // ButtonDigit only
	Op    engine.Op // ButtonOperator only
}

// Keypad is the fixed 5x4 button grid.
type Keypad struct {
	rows [keypadRows][keypadCols]Button
}

// NewKeypad builds the standard calculator layout.
func NewKeypad() Keypad {
	digit := func(d byte) Button {
		return Button{Label: string(d), Kind: ButtonDigit, Digit: d}
	}
	op := func(o engine.Op) Button {
		return Button{Label: o.String(), Kind: ButtonOperator, Op: o}
	}

	return Keypad{rows: [keypadRows][keypadCols]Button{
		{
			{Label: "C", Kind: ButtonClear},
			{Label: "±", Kind: ButtonToggleSign},
			{Label: "%", Kind: ButtonPercent},
			op(engine.OpDivide),
		},
		{digit('7'), digit('8'), digit('9'), op(engine.OpMultiply)},
		{digit('4'), digit('5'), digit('6'), op(engine.OpSubtract)},
		{digit('1'), digit('2'), digit('3'), op(engine.OpAdd)},
		{
			digit('0'),
			{Label: ".", Kind: ButtonDecimal},
			{Label: "⌫", Kind: ButtonBackspace},
			{Label: "=", Kind: ButtonEvaluate},
		},
	}}
}

// Rows returns the grid for rendering.
func (k Keypad) Rows() [keypadRows][keypadCols]Button {
	return k.rows
}

// ButtonAt resolves keypad-local coordinates to a button. Clicks on the gap
// between columns miss.
func (k Keypad) ButtonAt(x, y int) (Button, bool) {
	if x < 0 || y < 0 {
		return Button{}, false
	}

	col := x / (buttonWidth + keypadGapX)
	if col >= keypadCols || x%(buttonWidth+keypadGapX) >= buttonWidth {
		return Button{}, false
	}

	row := y / buttonHeight
	if row >= keypadRows {
		return Button{}, false
	}

	return k.rows[row][col], true
}
