// internal/words/catalog.go
//
// The catalog is the fixed list of secret words a round can draw from. It is
// built once at startup from the built-in list, the config file and any word
// packs, and never changes afterwards.

package words

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCatalog means no words were available to pick from.
	ErrEmptyCatalog = errors.New("words: catalog is empty")

	// ErrInvalidWord means a word contains something other than a-z or is
	// longer than MaxWordLength.
	ErrInvalidWord = errors.New("words: invalid word")
)

// MaxWordLength bounds catalog words so a whole-word guess always fits on
// one input line.
const MaxWordLength = 64

var builtin = []string{
	"banjo",
	"pajama",
	"polka",
	"puppy",
	"ghibli",
	"disney",
	"zombie",
	"microwave",
	"hamburger",
	"kettlebell",
	"elephant",
	"strawberry",
	"pixar",
	"microsoft",
}

// Builtin returns a copy of the words shipped with the game.
func Builtin() []string {
	out := make([]string, len(builtin))
	copy(out, builtin)
	return out
}

// Catalog is an immutable, non-empty list of lowercase words.
type Catalog struct {
	words []string
}

// NewCatalog lower-cases, trims and de-duplicates words, keeping first
// occurrence order. It fails if a word has characters outside a-z or if no
// words remain.
func NewCatalog(words ...string) (Catalog, error) {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		word, err := NormalizeWord(w)
		if err != nil {
			return Catalog{}, err
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	if len(out) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}
	return Catalog{words: out}, nil
}

// Default returns the catalog of built-in words.
func Default() Catalog {
	c, err := NewCatalog(builtin...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of words in the catalog.
func (c Catalog) Len() int { return len(c.words) }

// Words returns a copy of the catalog contents.
func (c Catalog) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// NormalizeWord trims and lower-cases w and checks it is made of a-z only.
func NormalizeWord(w string) (string, error) {
	word := strings.ToLower(strings.TrimSpace(w))
	if word == "" {
		return "", fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	if len(word) > MaxWordLength {
		return "", fmt.Errorf("%w: %d letters, limit is %d", ErrInvalidWord, len(word), MaxWordLength)
	}
	for i := 0; i < len(word); i++ {
		if c := word[i]; c < 'a' || c > 'z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
	}
	return word, nil
}
