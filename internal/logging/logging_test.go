package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", FormatJSON)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Info().Msg("dropped")
	logger.Warn().Str("type", "Applet").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1:\n%s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON log line: %v", err)
	}
	if entry["level"] != "warn" || entry["type"] != "Applet" || entry["message"] != "kept" {
		t.Errorf("entry = %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry has no timestamp")
	}
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", FormatConsole)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Error().Str("factory", "Gradle").Msg("not described")

	out := buf.String()
	if !strings.Contains(out, "ERR") || !strings.Contains(out, "not described") || !strings.Contains(out, "factory=Gradle") {
		t.Errorf("console output = %q", out)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud", FormatJSON); err == nil {
		t.Error("New() should return error for an unknown level")
	}
}

func TestNewInvalidFormat(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Error("New() should return error for an unknown format")
	}
}
