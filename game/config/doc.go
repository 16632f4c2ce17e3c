// Package config provides runtime settings for the Memory Game.
//
// The config package handles:
//   - Loading a .env file when one is present
//   - Parsing MEMORY_* environment variables into Settings
//   - Settings validation
//
// Variables:
//
//	MEMORY_SEED       shuffle seed; 0 picks a random deal each game
//	MEMORY_DEBUG      log every reveal, match and mismatch
//	MEMORY_TILE_SIZE  desktop tile size in pixels (default 60)
//	MEMORY_LOG_FILE   terminal mode log file; logs are discarded when empty
//
// Usage:
//
//	settings, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Command-line flags are applied on top of the loaded settings by the
// memory-game command.
package config
