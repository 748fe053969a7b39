package words

import (
	"errors"
	"strings"
	"testing"
)

type fixedSource struct {
	values []int
	calls  []int
}

func (s *fixedSource) Intn(n int) int {
	s.calls = append(s.calls, n)
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

func TestNewCatalogNormalizes(t *testing.T) {
	c, err := NewCatalog("  Banjo", "banjo", "PIXAR ", "puppy")
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	got := c.Words()
	want := []string{"banjo", "pixar", "puppy"}
	if len(got) != len(want) {
		t.Fatalf("words = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("words[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewCatalogRejectsEmpty(t *testing.T) {
	if _, err := NewCatalog(); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestNewCatalogRejectsInvalidWords(t *testing.T) {
	for _, w := range []string{"ice cream", "r2d2", "", "café", strings.Repeat("a", MaxWordLength+1)} {
		if _, err := NewCatalog("banjo", w); !errors.Is(err, ErrInvalidWord) {
			t.Fatalf("NewCatalog(%q): err = %v, want ErrInvalidWord", w, err)
		}
	}
}

func TestNewCatalogAcceptsLongestWord(t *testing.T) {
	word := strings.Repeat("ab", MaxWordLength/2)
	c, err := NewCatalog(word)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if got := c.Words()[0]; got != word {
		t.Fatalf("word = %q, want %q", got, word)
	}
}

func TestDefaultCatalogMatchesBuiltin(t *testing.T) {
	c := Default()
	if c.Len() != len(Builtin()) {
		t.Fatalf("len = %d, want %d", c.Len(), len(Builtin()))
	}
}

func TestPickUsesSource(t *testing.T) {
	c, err := NewCatalog("cat", "dog", "owl")
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	src := &fixedSource{values: []int{2, 0, 1}}
	for _, want := range []string{"owl", "cat", "dog"} {
		if got := Pick(c, src); got != want {
			t.Fatalf("Pick = %q, want %q", got, want)
		}
	}
	for _, n := range src.calls {
		if n != 3 {
			t.Fatalf("Intn called with %d, want 3", n)
		}
	}
}

func TestSeededSourceIsReproducible(t *testing.T) {
	c := Default()
	a, err := NewSource(42)
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	b, err := NewSource(42)
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	for i := 0; i < 20; i++ {
		if x, y := Pick(c, a), Pick(c, b); x != y {
			t.Fatalf("draw %d differs: %q vs %q", i, x, y)
		}
	}
}

func TestPickCoversCatalog(t *testing.T) {
	c := Default()
	src, err := NewSource(7)
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	seen := map[string]bool{}
	for i := 0; i < 2000; i++ {
		seen[Pick(c, src)] = true
	}
	if len(seen) != c.Len() {
		t.Fatalf("picked %d distinct words, want %d", len(seen), c.Len())
	}
}
