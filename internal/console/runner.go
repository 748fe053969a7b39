// internal/console/runner.go
//
// The console runner plays a round over plain line I/O. It is what runs when
// stdin is a pipe or a file, and it keeps the classic prompts:
//
//	you have 10 guesses.
//	the word is:
//	*****
//	What is your guess?

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/hanged-man/internal/game"
	"github.com/kingrea/hanged-man/internal/session"
)

// ErrInputClosed is returned when input ends before the round does.
var ErrInputClosed = errors.New("console: input closed before the round finished")

// maxLineBytes caps a single input line. Anything longer cannot be a word
// from the catalog, so it is read through and treated as an invalid guess.
const maxLineBytes = 4096

type styles struct {
	banner  lipgloss.Style
	mask    lipgloss.Style
	warn    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newStyles(out io.Writer, accent string) styles {
	r := lipgloss.NewRenderer(out)
	if strings.TrimSpace(accent) == "" {
		accent = "#FF6B6B"
	}
	return styles{
		banner: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(accent)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 2),
		mask:    r.NewStyle().Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("#F7B801")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
	}
}

// Runner plays one session over a reader/writer pair.
type Runner struct {
	session *session.Session
	in      *bufio.Reader
	out     io.Writer
	styles  styles
}

// line is one read from the input. tooLong marks a line cut off at
// maxLineBytes.
type line struct {
	text    string
	tooLong bool
	err     error
}

// New builds a runner. accent colors the banner; empty uses the default.
func New(s *session.Session, in io.Reader, out io.Writer, accent string) *Runner {
	return &Runner{
		session: s,
		in:      bufio.NewReader(in),
		out:     out,
		styles:  newStyles(out, accent),
	}
}

// Run loops until the round finishes, input ends or ctx is cancelled.
// Invalid guesses are re-prompted without limit and cost nothing.
// Reads happen on their own goroutine so cancelling ctx returns promptly even
// while the player has not pressed enter.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	round := r.session.Round()
	r.println(r.styles.banner.Render("HANGED MAN"))
	r.printStatus(round)

	lines := r.readLines(ctx)
	for !round.State().Finished() {
		turn, err := r.nextTurn(ctx, round, lines)
		if err != nil {
			return err
		}
		if turn.FullWord {
			r.println(r.styles.success.Render("AMAZING!!"))
			r.println("You succeeded to guess the entire word in one attempt!")
			return nil
		}
		r.printStatus(round)
	}
	r.printOutcome(round)
	return nil
}

func (r *Runner) nextTurn(ctx context.Context, round *game.Round, lines <-chan line) (game.Turn, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.Turn{}, err
		}
		r.println("What is your guess?")
		var in line
		select {
		case <-ctx.Done():
			return game.Turn{}, ctx.Err()
		case in = <-lines:
		}
		if in.err != nil {
			return game.Turn{}, in.err
		}
		if !in.tooLong {
			turn, err := r.session.Submit(in.text)
			if err == nil {
				return turn, nil
			}
			if !errors.Is(err, game.ErrInvalidGuess) {
				return game.Turn{}, err
			}
		}
		r.println(r.styles.warn.Render("The guess is invalid. Please enter one letter"))
		r.printStatus(round)
	}
}

// readLines feeds input lines to the returned channel until input ends or
// ctx is done. The final value carries the read error.
func (r *Runner) readLines(ctx context.Context) <-chan line {
	out := make(chan line)
	go func() {
		for {
			next := r.readLine()
			select {
			case out <- next:
			case <-ctx.Done():
				return
			}
			if next.err != nil {
				return
			}
		}
	}()
	return out
}

func (r *Runner) readLine() line {
	var buf []byte
	tooLong := false
	for {
		chunk, more, err := r.in.ReadLine()
		if err != nil {
			if len(buf) > 0 || tooLong {
				break
			}
			if errors.Is(err, io.EOF) {
				return line{err: ErrInputClosed}
			}
			return line{err: fmt.Errorf("console: read guess: %w", err)}
		}
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > maxLineBytes {
				buf, tooLong = nil, true
			}
		}
		if !more {
			break
		}
	}
	return line{text: strings.TrimSpace(string(buf)), tooLong: tooLong}
}

func (r *Runner) printStatus(round *game.Round) {
	r.println(fmt.Sprintf("you have %d guesses.", round.AttemptsRemaining()))
	r.println("the word is:")
	r.println(r.styles.mask.Render(round.Mask()))
}

func (r *Runner) printOutcome(round *game.Round) {
	switch round.State() {
	case game.StateWon:
		r.println(r.styles.success.Render("GOOD JOB! You are the best!"))
	case game.StateLost:
		r.println(r.styles.failure.Render("END GAME! You Lose!"))
	default:
		return
	}
	r.println("The word was:")
	r.println(round.Secret())
}

func (r *Runner) println(line string) {
	fmt.Fprintln(r.out, line)
}
