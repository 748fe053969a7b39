// internal/tui/app.go
//
// This is the terminal UI for hangedman. It uses bubbletea, which follows The
// Elm Architecture:
//
// 1. Model: the App below, wrapping the game session
// 2. Update: applies key presses; enter submits the typed guess
// 3. View: renders the mask, the attempt meter and the recent rounds
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/hanged-man/internal/game"
	"github.com/kingrea/hanged-man/internal/logbook"
	"github.com/kingrea/hanged-man/internal/session"
	"github.com/kingrea/hanged-man/internal/words"
)

// appState represents which screen we're on
type appState int

const (
	statePlaying  appState = iota // Reading guesses
	stateFinished                 // Round over, showing the result
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
	statusGood
)

const recentRounds = 5

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogbook shows the tail of book as recent rounds.
func WithLogbook(book *logbook.Logbook) AppOption {
	return func(a *App) {
		a.logbook = book
	}
}

// WithAccent overrides the accent color used for the title and mask.
func WithAccent(color string) AppOption {
	return func(a *App) {
		if strings.TrimSpace(color) != "" {
			a.styles = newStyles(color)
		}
	}
}

type keyMap struct {
	Submit key.Binding
	Exit   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Exit, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newKeyMap() keyMap {
	exit := key.NewBinding(key.WithKeys("enter", "q"), key.WithHelp("enter/q", "exit"))
	exit.SetEnabled(false)
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "guess")),
		Exit:   exit,
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state   appState
	session *session.Session
	logbook *logbook.Logbook

	input  textinput.Model
	keys   keyMap
	help   help.Model
	styles styles

	status     string
	statusKind statusKind

	width  int
	height int
}

// NewApp creates the UI for an already started session.
func NewApp(s *session.Session, opts ...AppOption) *App {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "a letter, or the whole word"
	input.CharLimit = words.MaxWordLength
	input.Width = 32
	input.Focus()

	app := &App{
		state:   statePlaying,
		session: s,
		input:   input,
		keys:    newKeyMap(),
		help:    help.New(),
		styles:  newStyles(""),
		status:  "What is your guess?",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	return app
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Exit):
			return a, tea.Quit
		case a.state == statePlaying && key.Matches(msg, a.keys.Submit):
			return a.submitGuess()
		}
	}

	if a.state != statePlaying {
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submitGuess hands the typed line to the session and reports the result.
func (a *App) submitGuess() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(a.input.Value())
	a.input.Reset()

	turn, err := a.session.Submit(line)
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		a.setStatus(statusWarn, "The guess is invalid. Please enter one letter")
		return a, nil
	case err != nil:
		a.setStatus(statusWarn, err.Error())
		return a, nil
	}

	switch {
	case turn.FullWord:
		a.setStatus(statusGood, "AMAZING!! You succeeded to guess the entire word in one attempt!")
	case turn.Hit:
		a.setStatus(statusGood, fmt.Sprintf("Yes! %q is in the word.", turn.Guess))
	default:
		a.setStatus(statusWarn, fmt.Sprintf("No %q in the word.", turn.Guess))
	}

	if turn.State.Finished() {
		a.finish(turn.State)
	}
	return a, nil
}

func (a *App) finish(state game.State) {
	a.state = stateFinished
	a.input.Blur()
	a.keys.Submit.SetEnabled(false)
	a.keys.Exit.SetEnabled(true)
	switch state {
	case game.StateWon:
		a.setStatus(statusGood, "GOOD JOB! You are the best!")
	case game.StateLost:
		a.setStatus(statusWarn, "END GAME! You Lose!")
	}
}

func (a *App) setStatus(kind statusKind, text string) {
	a.statusKind = kind
	a.status = text
}
