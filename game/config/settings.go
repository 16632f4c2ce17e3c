package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrInvalidSettings = errors.New("invalid settings")

const (
	DefaultTileSize = 60
	MinTileSize     = 24
	MaxTileSize     = 240
)

// Settings holds everything the hosts can be tuned with
type Settings struct {
	Seed     uint64 `env:"MEMORY_SEED"`
	Debug    bool   `env:"MEMORY_DEBUG"`
	TileSize int    `env:"MEMORY_TILE_SIZE" envDefault:"60"`
	LogFile  string `env:"MEMORY_LOG_FILE"`
}

// Default returns the settings used when nothing is configured
func Default() *Settings {
	return &Settings{TileSize: DefaultTileSize}
}

// Load reads the given .env files (".env" when none are named), then the
// environment. Missing .env files are not an error.
func Load(envFiles ...string) (*Settings, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	settings := Default()
	if err := ParseEnv(settings); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks settings for values the hosts cannot use
func (s *Settings) Validate() error {
	if s.TileSize < MinTileSize || s.TileSize > MaxTileSize {
		return fmt.Errorf("%w: tile size must be between %d and %d, got %d", ErrInvalidSettings, MinTileSize, MaxTileSize, s.TileSize)
	}
	return nil
}
