package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hangedman.log")
	log, err := New(path, "debug")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Info().Str("round", "abc").Msg("round started")
	if err := log.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("decode %q: %v", data, err)
	}
	if entry["message"] != "round started" || entry["round"] != "abc" || entry["app"] != "hangedman" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestLevelFiltersEntries(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWriter(&buf, "warn")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestBadLevel(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatalf("expected level parse error")
	}
}

func TestNilAndNopAreSafe(t *testing.T) {
	var l *Logger
	if err := l.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
	n := Nop()
	n.Info().Msg("discarded")
	if err := n.Close(); err != nil {
		t.Fatalf("nop close: %v", err)
	}
}
