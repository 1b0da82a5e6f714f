package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestTeeHandler(t *testing.T) {
	var text, js bytes.Buffer
	h := NewTeeHandler(
		NewHandler(&text, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&js, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(h).With("run", 1)

	logger.Debug("debug only in json")
	logger.Warn("both")

	if strings.Contains(text.String(), "debug only") {
		t.Error("text handler should filter debug")
	}
	if !strings.Contains(text.String(), "run=1") {
		t.Errorf("text output missing attrs: %q", text.String())
	}

	lines := strings.Split(strings.TrimSpace(js.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("json lines = %d, want 2: %q", len(lines), js.String())
	}
	for _, line := range lines {
		if !json.Valid([]byte(line)) {
			t.Errorf("invalid JSON line: %s", line)
		}
	}
}

func TestNewTeeHandler_Single(t *testing.T) {
	inner := slog.NewTextHandler(&bytes.Buffer{}, nil)
	if NewTeeHandler(inner) != slog.Handler(inner) {
		t.Error("single handler should be returned unchanged")
	}
}
