package game

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		secret string
		want   bool
	}{
		{name: "single letter", input: "a", secret: "dog", want: true},
		{name: "letter not in word", input: "z", secret: "dog", want: true},
		{name: "full secret", input: "dog", secret: "dog", want: true},
		{name: "digits", input: "12", secret: "dog", want: false},
		{name: "single digit", input: "7", secret: "dog", want: false},
		{name: "punctuation", input: "!", secret: "dog", want: false},
		{name: "uppercase", input: "A", secret: "dog", want: false},
		{name: "other word", input: "cat", secret: "dog", want: false},
		{name: "prefix of secret", input: "do", secret: "dog", want: false},
		{name: "secret with space", input: "dog ", secret: "dog", want: false},
		{name: "non ascii", input: "é", secret: "dog", want: false},
		{name: "empty", input: "", secret: "dog", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.input, tt.secret); got != tt.want {
				t.Fatalf("Validate(%q, %q) = %v, want %v", tt.input, tt.secret, got, tt.want)
			}
		})
	}
}

func TestValidateAcceptsEveryLowercaseLetter(t *testing.T) {
	for c := 'a'; c <= 'z'; c++ {
		if !Validate(string(c), "kettlebell") {
			t.Fatalf("Validate(%q) = false, want true", c)
		}
	}
}

func TestRevealReplacesEveryOccurrence(t *testing.T) {
	secret := "kettlebell"
	mask := NewMask(secret)
	got := Reveal(secret, mask, "e")
	want := "*e***e*e**"
	if got != want {
		t.Fatalf("Reveal = %q, want %q", got, want)
	}
	for i := 0; i < len(secret); i++ {
		if secret[i] == 'e' && got[i] != 'e' {
			t.Fatalf("position %d not revealed in %q", i, got)
		}
		if secret[i] != 'e' && got[i] != mask[i] {
			t.Fatalf("position %d changed in %q", i, got)
		}
	}
}

func TestRevealMissingLetterKeepsMask(t *testing.T) {
	if got := Reveal("cat", "c**", "z"); got != "c**" {
		t.Fatalf("Reveal = %q, want c**", got)
	}
}

func TestRevealIsIdempotent(t *testing.T) {
	secret := "strawberry"
	mask := Reveal(secret, NewMask(secret), "s")
	for c := 'a'; c <= 'z'; c++ {
		letter := string(c)
		once := Reveal(secret, mask, letter)
		twice := Reveal(secret, once, letter)
		if once != twice {
			t.Fatalf("Reveal not idempotent for %q: %q then %q", letter, once, twice)
		}
	}
}

func TestRevealDoesNotAliasInput(t *testing.T) {
	mask := "***"
	_ = Reveal("cat", mask, "a")
	if mask != "***" {
		t.Fatalf("input mask changed to %q", mask)
	}
}

func TestDecrement(t *testing.T) {
	tests := []struct {
		letter string
		in     int
		want   int
	}{
		{letter: "c", in: 10, want: 10},
		{letter: "t", in: 1, want: 1},
		{letter: "x", in: 10, want: 9},
		{letter: "x", in: 1, want: 0},
		{letter: "x", in: 0, want: -1},
	}
	for _, tt := range tests {
		if got := Decrement("cat", tt.letter, tt.in); got != tt.want {
			t.Fatalf("Decrement(cat, %q, %d) = %d, want %d", tt.letter, tt.in, got, tt.want)
		}
	}
}

func TestIsComplete(t *testing.T) {
	tests := map[string]bool{
		"cat": true,
		"c*t": false,
		"***": false,
		"":    true,
	}
	for mask, want := range tests {
		if got := IsComplete(mask); got != want {
			t.Fatalf("IsComplete(%q) = %v, want %v", mask, got, want)
		}
	}
}
