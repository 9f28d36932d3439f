package engine

import (
	"math"
	"strconv"
	"strings"
)

// formatResult renders an evaluation result for the display. Integers render
// without a fractional part; other values are rounded to 8 fractional digits
// with trailing zeros stripped. When the rendered text still exceeds the
// display cap, it is re-rendered with DisplayCap significant digits, which
// switches to exponential notation for very large or small magnitudes.
func formatResult(v float64) string {
	var s string
	if v == math.Trunc(v) {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', 8, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if significantLen(s) > DisplayCap {
		s = strconv.FormatFloat(v, 'g', DisplayCap, 64)
	}
	return s
}

// significantLen counts display characters against the cap, excluding a
// leading minus sign and the decimal point.
func significantLen(s string) int {
	n := len(s)
	if strings.HasPrefix(s, "-") {
		n--
	}
	if containsDecimalPoint(s) {
		n--
	}
	return n
}

func containsDecimalPoint(s string) bool {
	return strings.Contains(s, ".")
}
