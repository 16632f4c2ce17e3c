// Command memory-game starts the Memory Game.
//
// It supports two front-ends:
//  1. "desktop" (default) – an ebiten window with a clickable 4x4 grid
//  2. "terminal" – a Bubble Tea UI with mouse and keyboard input
//
// Settings come from a .env file, MEMORY_* environment variables and
// flags, in increasing priority.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/memory-game/desktop"
	"github.com/wricardo/memory-game/game/config"
	"github.com/wricardo/memory-game/game/engine"
	"github.com/wricardo/memory-game/game/session"
	"github.com/wricardo/memory-game/terminal"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Memory Game"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatalf("%s: %v", AppName, err)
	}
}

// newCommand builds the CLI with its flags and front-end subcommands
func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "memory-game",
		Usage:   "flip cards, find the pairs",
		Version: Version,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "shuffle seed; 0 deals a random game (overrides MEMORY_SEED)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log every reveal, match and mismatch (overrides MEMORY_DEBUG)",
			},
			&cli.IntFlag{
				Name:  "tile-size",
				Usage: "desktop tile size in pixels (overrides MEMORY_TILE_SIZE)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "terminal mode log file (overrides MEMORY_LOG_FILE)",
			},
		},
		Action: runDesktop,
		Commands: []*cli.Command{
			{
				Name:   "desktop",
				Usage:  "play in a desktop window",
				Action: runDesktop,
			},
			{
				Name:   "terminal",
				Usage:  "play in the terminal",
				Action: runTerminal,
			},
		},
	}
}

// loadSettings reads .env and the environment, then applies any flags that were set
func loadSettings(cmd *cli.Command) (*config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("seed") {
		seed := cmd.Int64("seed")
		if seed < 0 {
			return nil, fmt.Errorf("%w: seed must not be negative, got %d", config.ErrInvalidSettings, seed)
		}
		settings.Seed = uint64(seed)
	}
	if cmd.IsSet("debug") {
		settings.Debug = cmd.Bool("debug")
	}
	if cmd.IsSet("tile-size") {
		settings.TileSize = cmd.Int("tile-size")
	}
	if cmd.IsSet("log-file") {
		settings.LogFile = cmd.String("log-file")
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// setupLogging matches the flags used by the rest of the project
func setupLogging(debug bool) {
	if debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

// newSession deals the first game according to settings
func newSession(settings *config.Settings) (*session.Session, error) {
	var opts []engine.Option
	if settings.Seed != 0 {
		opts = append(opts, engine.WithRNG(engine.NewSeededRNG(settings.Seed)))
	}

	game, err := engine.NewGame(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	sess := session.New(game, clock.New())
	sess.SetDebug(settings.Debug)
	return sess, nil
}

func runDesktop(ctx context.Context, cmd *cli.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	setupLogging(settings.Debug)

	sess, err := newSession(settings)
	if err != nil {
		return err
	}

	log.Printf("Starting %s v%s (mode: desktop, game: %s)", AppName, Version, sess.ID)
	return desktop.Run(sess, settings.TileSize)
}

func runTerminal(ctx context.Context, cmd *cli.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	setupLogging(settings.Debug)

	// Anything written to the terminal would corrupt the UI
	if settings.LogFile != "" {
		f, err := tea.LogToFile(settings.LogFile, "memory-game")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	sess, err := newSession(settings)
	if err != nil {
		return err
	}

	log.Printf("Starting %s v%s (mode: terminal, game: %s)", AppName, Version, sess.ID)
	return terminal.Run(sess, tea.WithContext(ctx))
}
