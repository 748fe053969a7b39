// cmd/hangedman/main.go
//
// This is the entry point for the hangedman game.
//
// Flow:
// 1. Load configuration (.env, HANGEDMAN_* env vars, <home>/config.yaml)
// 2. Build the word catalog from config words, packs and the built-in list
// 3. Pick the secret and start the session
// 4. Play it in the terminal UI, or over plain lines when stdin is not a TTY

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/kingrea/hanged-man/internal/config"
	"github.com/kingrea/hanged-man/internal/console"
	"github.com/kingrea/hanged-man/internal/logbook"
	"github.com/kingrea/hanged-man/internal/logging"
	"github.com/kingrea/hanged-man/internal/session"
	"github.com/kingrea/hanged-man/internal/tui"
	"github.com/kingrea/hanged-man/internal/words"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log, err := logging.New(cfg.LogPath(), cfg.LogLevel())
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer log.Close()

	book, err := logbook.New(cfg.HistoryPath())
	if err != nil {
		log.Warn().Err(err).Msg("round history disabled")
	}

	catalog, err := loadCatalog(cfg, book)
	if err != nil {
		log.Error().Err(err).Msg("catalog unavailable")
		return fmt.Errorf("building word catalog: %w", err)
	}
	src, err := words.NewSource(cfg.Seed())
	if err != nil {
		return fmt.Errorf("seeding word picker: %w", err)
	}
	log.Debug().Int("words", catalog.Len()).Int64("seed", cfg.Seed()).Msg("catalog ready")

	s := session.New(catalog, src, session.WithLogbook(book), session.WithLogger(log))

	if cfg.Plain() || !isatty.IsTerminal(os.Stdin.Fd()) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return console.New(s, os.Stdin, os.Stdout, cfg.Accent()).Run(ctx)
	}

	// Run blocks until the round is over and the player leaves
	p := tea.NewProgram(
		tui.NewApp(s, tui.WithLogbook(book), tui.WithAccent(cfg.Accent())),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// loadCatalog builds the catalog and notes a failure in the round history so
// the recent panel explains why the last launch never started a round.
func loadCatalog(cfg *config.Config, book *logbook.Logbook) (words.Catalog, error) {
	packs, err := words.LoadPackDir(cfg.PacksDir())
	if err == nil {
		var catalog words.Catalog
		catalog, err = words.BuildCatalog(cfg.Words(), packs, cfg.EnabledPacks())
		if err == nil {
			return catalog, nil
		}
	}
	book.Error("No round started · %v", err)
	return words.Catalog{}, err
}
