package logbook

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTailReturnsRecentLinesAndTotal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "rounds.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	lines, total := book.Tail(3)
	if total != 5 {
		t.Fatalf("total lines = %d, want 5", total)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestAppendFormatsLevelAndFlattensMessage(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "rounds.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	book.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	book.Warn("multi\nline   message")
	lines, _ := book.Tail(1)
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %v", lines)
	}
	if want := "2026-01-02T03:04:05Z WARN  multi line message"; lines[0] != want {
		t.Fatalf("line = %q, want %q", lines[0], want)
	}
}

func TestErrorEntriesUseErrorLevel(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "rounds.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	book.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	book.Error("no round: %s", "empty catalog")
	lines, _ := book.Tail(1)
	if want := "2026-01-02T03:04:05Z ERROR no round: empty catalog"; len(lines) != 1 || lines[0] != want {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}

func TestTailMissingFileAndNil(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "rounds.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	if lines, total := book.Tail(5); lines != nil || total != 0 {
		t.Fatalf("expected empty tail, got %v %d", lines, total)
	}
	var nilBook *Logbook
	nilBook.Info("ignored")
	if lines, total := nilBook.Tail(5); lines != nil || total != 0 {
		t.Fatalf("nil logbook tail = %v %d", lines, total)
	}
}
