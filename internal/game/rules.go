// internal/game/rules.go
//
// The pure rules of a round. Every function here takes strings and returns
// new values; nothing touches the Round, so the state machine in round.go and
// the tests can lean on them directly.

package game

import "strings"

const (
	// Placeholder marks a letter the player has not revealed yet.
	Placeholder = '*'

	// TotalAttempts is the guess budget every round starts with.
	TotalAttempts = 10
)

// NewMask returns a mask of placeholders as long as secret.
func NewMask(secret string) string {
	return strings.Repeat(string(Placeholder), len(secret))
}

// Validate reports whether input is an acceptable guess for secret: a single
// lowercase letter, or the whole secret word. Input is expected to be
// lower-cased already.
func Validate(input, secret string) bool {
	if input == "" {
		return false
	}
	for i := 0; i < len(input); i++ {
		if c := input[i]; c < 'a' || c > 'z' {
			return false
		}
	}
	if len(input) > 1 && input != secret {
		return false
	}
	return true
}

// Reveal returns mask with every position where secret holds letter replaced
// by that letter. If letter does not occur in secret the mask comes back
// unchanged.
func Reveal(secret, mask, letter string) string {
	if len(letter) != 1 || len(mask) != len(secret) {
		return mask
	}
	c := letter[0]
	var out []byte
	for i := 0; i < len(secret); i++ {
		if secret[i] != c {
			continue
		}
		if out == nil {
			out = []byte(mask)
		}
		out[i] = c
	}
	if out == nil {
		return mask
	}
	return string(out)
}

// Decrement charges one attempt when letter is not part of secret. It does not
// clamp at zero; the caller stops playing once attempts run out.
func Decrement(secret, letter string, attempts int) int {
	if strings.Contains(secret, letter) {
		return attempts
	}
	return attempts - 1
}

// IsComplete reports whether mask has no placeholders left.
func IsComplete(mask string) bool {
	return !strings.ContainsRune(mask, Placeholder)
}
