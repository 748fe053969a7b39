// internal/game/round.go
//
// Round is the only stateful thing in the game. It is created once per
// invocation, mutated by each accepted guess and thrown away when play ends.
//
// State flow:
//
//	Playing -> Won            (mask fully revealed)
//	Playing -> WonByFullGuess (the whole word typed in one guess)
//	Playing -> Lost           (attempts reach zero without a win)

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidGuess is returned for input that is neither a single a-z
	// letter nor the exact secret word. Callers re-prompt.
	ErrInvalidGuess = errors.New("game: invalid guess")

	// ErrRoundOver is returned when guessing on a finished round.
	ErrRoundOver = errors.New("game: round is over")
)

// State is where a round sits in its lifecycle.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
	StateWonByFullGuess
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateWonByFullGuess:
		return "won-by-full-guess"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Finished reports whether s is terminal.
func (s State) Finished() bool {
	return s != StatePlaying
}

// Won reports whether s is one of the winning states.
func (s State) Won() bool {
	return s == StateWon || s == StateWonByFullGuess
}

// Turn describes the effect of one accepted guess.
type Turn struct {
	Guess    string
	Hit      bool // letter occurs in the secret, or the full word matched
	FullWord bool
	Mask     string
	Attempts int
	State    State
}

// Round holds the secret, the revealed mask and the remaining budget.
type Round struct {
	ID string

	secret    string
	mask      string
	attempts  int
	won       bool
	fullGuess bool
	guesses   []string
}

// NewRound starts a round for secret with the full attempt budget.
func NewRound(secret string) *Round {
	return &Round{
		ID:       uuid.NewString(),
		secret:   secret,
		mask:     NewMask(secret),
		attempts: TotalAttempts,
	}
}

// Secret returns the word being guessed.
func (r *Round) Secret() string { return r.secret }

// Mask returns the player-visible word.
func (r *Round) Mask() string { return r.mask }

// AttemptsRemaining returns the unspent guess budget.
func (r *Round) AttemptsRemaining() int { return r.attempts }

// Won reports whether the round has been won by either route.
func (r *Round) Won() bool { return r.won }

// Guesses returns the accepted guesses in the order they were made.
func (r *Round) Guesses() []string {
	out := make([]string, len(r.guesses))
	copy(out, r.guesses)
	return out
}

// State classifies the round. A win is checked before exhaustion, so a move
// that completes the word is a win whatever the budget says.
func (r *Round) State() State {
	switch {
	case r.won && r.fullGuess:
		return StateWonByFullGuess
	case r.won:
		return StateWon
	case r.attempts <= 0:
		return StateLost
	default:
		return StatePlaying
	}
}

// Guess applies one line of player input. Input is lower-cased here so
// guesses are case-insensitive. Invalid input leaves the round untouched and
// returns ErrInvalidGuess.
func (r *Round) Guess(input string) (Turn, error) {
	if r.State().Finished() {
		return Turn{}, ErrRoundOver
	}
	guess := strings.ToLower(input)
	if !Validate(guess, r.secret) {
		return Turn{Guess: guess, Mask: r.mask, Attempts: r.attempts, State: r.State()},
			fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}
	r.guesses = append(r.guesses, guess)

	if len(guess) > 1 && guess == r.secret {
		r.won = true
		r.fullGuess = true
		r.mask = r.secret
		return r.turn(guess, true, true), nil
	}

	hit := strings.Contains(r.secret, guess)
	r.mask = Reveal(r.secret, r.mask, guess)
	r.attempts = Decrement(r.secret, guess, r.attempts)
	r.won = IsComplete(r.mask)
	return r.turn(guess, hit, false), nil
}

func (r *Round) turn(guess string, hit, fullWord bool) Turn {
	return Turn{
		Guess:    guess,
		Hit:      hit,
		FullWord: fullWord,
		Mask:     r.mask,
		Attempts: r.attempts,
		State:    r.State(),
	}
}
