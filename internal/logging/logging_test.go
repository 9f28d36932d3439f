package logging

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{" Error ", LevelError},
		{"nonsense", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewLogger(&buf, LevelWarn)

	log.Info("quiet")
	log.Warn("loud")

	out := buf.String()
	if bytes.Contains(buf.Bytes(), []byte("quiet")) {
		t.Fatalf("info record leaked through warn level: %q", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte("loud")) {
		t.Fatalf("warn record missing from output: %q", out)
	}
}

func TestNewLogger_NilWriterDiscards(t *testing.T) {
	t.Parallel()

	log := NewLogger(nil, LevelDebug)
	log.Info("goes nowhere") // must not panic
}

func TestOpenFile(t *testing.T) {
	t.Parallel()

	w, err := OpenFile("")
	if err != nil || w != nil {
		t.Fatalf("OpenFile(\"\") = %v, %v, want nil, nil", w, err)
	}

	path := filepath.Join(t.TempDir(), "logs", "tally.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile(%q) failed: %v", path, err)
	}
	defer f.Close()

	if _, err := f.Write([]byte("hello\n")); err != nil {
		t.Fatalf("write to log file failed: %v", err)
	}
}
