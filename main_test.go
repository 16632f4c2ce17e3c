package main

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/memory-game/game/config"
	"github.com/wricardo/memory-game/game/engine"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "Memory Game" {
		t.Errorf("Expected app name Memory Game, got %s", AppName)
	}
}

func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MEMORY_SEED", "MEMORY_DEBUG", "MEMORY_TILE_SIZE", "MEMORY_LOG_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// runLoadSettings parses args with the real command and returns the settings it would use
func runLoadSettings(t *testing.T, args ...string) (*config.Settings, error) {
	t.Helper()
	var settings *config.Settings

	cmd := newCommand()
	cmd.Action = func(ctx context.Context, c *cli.Command) error {
		var err error
		settings, err = loadSettings(c)
		return err
	}

	err := cmd.Run(context.Background(), append([]string{"memory-game"}, args...))
	return settings, err
}

func TestLoadSettings_Defaults(t *testing.T) {
	clearSettingsEnv(t)

	settings, err := runLoadSettings(t)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if settings.TileSize != config.DefaultTileSize || settings.Seed != 0 || settings.Debug {
		t.Errorf("Unexpected defaults: %+v", settings)
	}
}

func TestLoadSettings_FlagsOverrideEnvironment(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("MEMORY_SEED", "11")
	t.Setenv("MEMORY_TILE_SIZE", "50")

	settings, err := runLoadSettings(t, "--seed", "5", "--debug", "--log-file", "game.log")
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if settings.Seed != 5 {
		t.Errorf("Expected flag seed 5, got %d", settings.Seed)
	}
	if settings.TileSize != 50 {
		t.Errorf("Expected environment tile size 50, got %d", settings.TileSize)
	}
	if !settings.Debug || settings.LogFile != "game.log" {
		t.Errorf("Expected debug and log file from flags, got %+v", settings)
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	clearSettingsEnv(t)

	_, err := runLoadSettings(t, "--tile-size", "1")
	if !errors.Is(err, config.ErrInvalidSettings) {
		t.Errorf("Expected ErrInvalidSettings for tiny tiles, got %v", err)
	}

	_, err = runLoadSettings(t, "--seed=-3")
	if !errors.Is(err, config.ErrInvalidSettings) {
		t.Errorf("Expected ErrInvalidSettings for negative seed, got %v", err)
	}
}

func TestNewSession_Seeded(t *testing.T) {
	settings := config.Default()
	settings.Seed = 21

	a, err := newSession(settings)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	b, err := newSession(settings)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	ca, cb := a.Game().Cards(), b.Game().Cards()
	if len(ca) != engine.DeckSize {
		t.Fatalf("Expected %d cards, got %d", engine.DeckSize, len(ca))
	}
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("Card %d differs between sessions with the same seed", i)
		}
	}
}
