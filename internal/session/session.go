// internal/session/session.go
//
// A Session is one game invocation: it draws the secret from the catalog,
// owns the Round, and records every accepted guess and the outcome. Both
// front ends (the line console and the terminal UI) drive a Session.

package session

import (
	"errors"

	"github.com/kingrea/hanged-man/internal/game"
	"github.com/kingrea/hanged-man/internal/logbook"
	"github.com/kingrea/hanged-man/internal/logging"
	"github.com/kingrea/hanged-man/internal/words"
)

// Option customizes Session construction.
type Option func(*Session)

// WithLogbook records round history to book.
func WithLogbook(book *logbook.Logbook) Option {
	return func(s *Session) {
		s.book = book
	}
}

// WithLogger sends diagnostics to log.
func WithLogger(log *logging.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// Session wraps the single Round of a game.
type Session struct {
	round *game.Round
	book  *logbook.Logbook
	log   *logging.Logger
}

// New picks a secret from catalog using src and starts the round.
func New(catalog words.Catalog, src words.Source, opts ...Option) *Session {
	return NewWithSecret(words.Pick(catalog, src), opts...)
}

// NewWithSecret starts a round for a known secret.
func NewWithSecret(secret string, opts ...Option) *Session {
	s := &Session{
		round: game.NewRound(secret),
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.log.Info().Str("round", s.round.ID).Int("letters", len(secret)).Msg("round started")
	s.book.Info("Round %s started · %d letters", shortID(s.round.ID), len(secret))
	return s
}

// Round exposes the current round for rendering.
func (s *Session) Round() *game.Round {
	return s.round
}

// Submit applies one line of input to the round. Invalid input is reported
// with game.ErrInvalidGuess and leaves the round as it was.
func (s *Session) Submit(input string) (game.Turn, error) {
	turn, err := s.round.Guess(input)
	if err != nil {
		if errors.Is(err, game.ErrInvalidGuess) {
			s.log.Debug().Str("round", s.round.ID).Str("input", input).Msg("invalid guess")
		} else {
			s.log.Warn().Err(err).Str("round", s.round.ID).Msg("guess rejected")
		}
		return turn, err
	}
	s.log.Debug().
		Str("round", s.round.ID).
		Str("guess", turn.Guess).
		Bool("hit", turn.Hit).
		Int("attempts", turn.Attempts).
		Str("state", turn.State.String()).
		Msg("guess applied")
	if turn.State.Finished() {
		s.finish()
	}
	return turn, nil
}

func (s *Session) finish() {
	r := s.round
	state := r.State()
	s.log.Info().
		Str("round", r.ID).
		Str("state", state.String()).
		Int("guesses", len(r.Guesses())).
		Int("attempts", r.AttemptsRemaining()).
		Msg("round finished")
	if state.Won() {
		s.book.Info("Round %s %s · word %s · %d guesses · %d attempts left",
			shortID(r.ID), state, r.Secret(), len(r.Guesses()), r.AttemptsRemaining())
		return
	}
	s.book.Warn("Round %s %s · word %s · %d guesses",
		shortID(r.ID), state, r.Secret(), len(r.Guesses()))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
