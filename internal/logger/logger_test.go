package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerWithWriter("warn", &buf)
	log.Debug("hidden debug")
	log.Info("hidden info")
	log.Warn("shown warn")
	log.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug/info to be filtered, got %q", out)
	}

	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("Expected warn and error records, got %q", out)
	}
}

func TestLogger_WithKeepsLevel(t *testing.T) {
	var buf bytes.Buffer

	child := NewLoggerWithWriter("warn", &buf).With("component", "test")

	child.Info("hidden")
	child.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info record to be filtered, got %q", out)
	}

	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "component=test") {
		t.Errorf("Expected child warn record with attributes, got %q", out)
	}
}

func TestLogger_WithRunID(t *testing.T) {
	var buf bytes.Buffer

	NewLoggerWithWriter("info", &buf).WithRunID().Info("run")

	out := strings.TrimSpace(buf.String())

	idx := strings.Index(out, "run_id=")
	if idx < 0 {
		t.Fatalf("Expected run_id attribute, got %q", out)
	}

	id := strings.Fields(out[idx+len("run_id="):])[0]
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run_id %q is not a UUID: %v", id, err)
	}
}
