package logger

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC)
}

func newTestLogger(buf *bytes.Buffer, level string) *ConsoleLogger {
	cl := NewConsoleLogger(buf, level)
	cl.now = fixedClock
	return cl
}

func TestConsoleLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	cl := newTestLogger(&buf, "debug")

	cl.LogDebug("skipping /nope")

	want := "[13:04:05] [DEBUG] skipping /nope\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{"trace", []string{"TRACE", "DEBUG", "ERROR"}},
		{"debug", []string{"DEBUG", "ERROR"}},
		{"info", []string{"ERROR"}},
		{"warn", []string{"ERROR"}},
		{"error", []string{"ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			cl := newTestLogger(&buf, tt.level)

			cl.LogTrace("m")
			cl.LogDebug("m")
			cl.LogError("m")

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if len(lines) != len(tt.want) {
				t.Fatalf("got %d lines, want %d: %q", len(lines), len(tt.want), buf.String())
			}
			for i, lvl := range tt.want {
				if !strings.Contains(lines[i], "["+lvl+"]") {
					t.Errorf("line %d = %q, want level %s", i, lines[i], lvl)
				}
			}
		})
	}
}

func TestConsoleLogger_NilWriter(t *testing.T) {
	cl := NewConsoleLogger(nil, "trace")
	cl.LogError("dropped")

	var nilLogger *ConsoleLogger
	nilLogger.LogError("dropped")

	Discard().LogError("dropped")
}

func TestConsoleLogger_WriterFailure(t *testing.T) {
	cl := NewConsoleLogger(failingWriter{}, "trace")
	cl.now = fixedClock

	cl.LogTrace("lost")
	cl.LogError("lost")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stderr closed")
}

func TestNormalizeLevel(t *testing.T) {
	tests := map[string]string{
		"DEBUG":   "debug",
		" warn ":  "warn",
		"":        DefaultLevel,
		"verbose": DefaultLevel,
	}
	for in, want := range tests {
		if got := NormalizeLevel(in); got != want {
			t.Errorf("NormalizeLevel(%q) = %q, want %q", in, got, want)
		}
	}

	if !ValidLevel("Info") {
		t.Error("ValidLevel(\"Info\") = false, want true")
	}
	if ValidLevel("loud") {
		t.Error("ValidLevel(\"loud\") = true, want false")
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("bytes.Buffer reported as terminal")
	}
	if isTerminal(nil) {
		t.Error("nil writer reported as terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "log")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Error("regular file reported as terminal")
	}
}
