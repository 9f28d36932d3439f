package engine

import "testing"

func TestFormatResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"integer drops fraction", 14, "14"},
		{"negative integer", -3, "-3"},
		{"zero", 0, "0"},
		{"strips trailing zeros", 0.1 + 0.2, "0.3"},
		{"eight fractional digits", 1.0 / 3.0, "0.33333333"},
		{"rounded up", 2.0 / 3.0, "0.66666667"},
		{"fits cap exactly", 123456789, "123456789"},
		{"large integer switches to exponent", 1234567890, "1.23456789e+09"},
		{"round power of ten exponent", 1e10, "1e+10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatResult(tt.v); got != tt.want {
				t.Fatalf("formatResult(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestSignificantLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    string
		want int
	}{
		{"0", 1},
		{"123456789", 9},
		{"-123456789", 9},
		{"1.2345678", 8},
		{"-1.23456789", 9},
	}

	for _, tt := range tests {
		if got := significantLen(tt.s); got != tt.want {
			t.Fatalf("significantLen(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}
