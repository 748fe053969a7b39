package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/hanged-man/internal/game"
)

const defaultAccent = "#FF6B6B"

type styles struct {
	title     lipgloss.Style
	mask      lipgloss.Style
	meterFull lipgloss.Style
	meterUsed lipgloss.Style
	info      lipgloss.Style
	warn      lipgloss.Style
	good      lipgloss.Style
	detail    lipgloss.Style
	panel     lipgloss.Style
	panelHead lipgloss.Style
}

func newStyles(accent string) styles {
	if strings.TrimSpace(accent) == "" {
		accent = defaultAccent
	}
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(accent)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 2),
		mask:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)).Padding(1, 2),
		meterFull: lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		meterUsed: lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
		info:      lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")),
		warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true),
		good:      lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0")),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1),
		panelHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
	}
}

// View renders the current state to a string.
func (a *App) View() string {
	round := a.session.Round()
	sections := []string{
		a.styles.title.Render("HANGED MAN"),
		a.renderAttempts(round),
		a.styles.mask.Render(spaced(round.Mask())),
		a.renderGuesses(round),
	}
	if a.state == statePlaying {
		sections = append(sections, a.input.View())
	} else {
		sections = append(sections, a.renderOutcome(round))
	}
	sections = append(sections, a.renderStatus())
	if panel := a.renderRecentPanel(); panel != "" {
		sections = append(sections, panel)
	}
	sections = append(sections, a.help.View(a.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderAttempts(round *game.Round) string {
	left := max(0, round.AttemptsRemaining())
	used := max(0, game.TotalAttempts-left)
	meter := a.styles.meterFull.Render(strings.Repeat("■", left)) +
		a.styles.meterUsed.Render(strings.Repeat("□", used))
	return fmt.Sprintf("%s  you have %d guesses.", meter, left)
}

func (a *App) renderGuesses(round *game.Round) string {
	guesses := round.Guesses()
	if len(guesses) == 0 {
		return a.styles.detail.Render("No guesses yet.")
	}
	return a.styles.detail.Render("Guessed: " + strings.Join(guesses, " "))
}

func (a *App) renderOutcome(round *game.Round) string {
	return a.styles.info.Render("The word was: " + round.Secret())
}

func (a *App) renderStatus() string {
	switch a.statusKind {
	case statusWarn:
		return a.styles.warn.Render(a.status)
	case statusGood:
		return a.styles.good.Render(a.status)
	default:
		return a.styles.info.Render(a.status)
	}
}

func (a *App) renderRecentPanel() string {
	lines, total := a.logbook.Tail(recentRounds)
	if len(lines) == 0 {
		return ""
	}
	head := a.styles.panelHead.Render(fmt.Sprintf("Recent rounds · %d total", total))
	body := a.styles.detail.Render(strings.Join(lines, "\n"))
	return a.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Left, head, body))
}

// spaced puts a space between mask characters so placeholders are countable.
func spaced(mask string) string {
	if mask == "" {
		return ""
	}
	return strings.Join(strings.Split(mask, ""), " ")
}
