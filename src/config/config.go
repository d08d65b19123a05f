package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultNumElevators = 2
	DefaultLogLevel     = "info"
	DefaultEnvFile      = ".env"
)

// Config holds the shell's runtime settings.
type Config struct {
	NumElevators int
	SystemName   string
	LogLevel     string
}

// Load reads a .env file and merges it over the defaults. A missing file is
// fine and yields the defaults; a malformed value is an error.
//
// Recognized keys: NUM_ELEVATORS, SYSTEM_NAME, LOG_LEVEL.
func Load(path string) (Config, error) {
	cfg := Config{
		NumElevators: DefaultNumElevators,
		LogLevel:     DefaultLogLevel,
	}

	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	if v, ok := env["NUM_ELEVATORS"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("NUM_ELEVATORS: %w", err)
		}
		cfg.NumElevators = n
	}
	if v, ok := env["SYSTEM_NAME"]; ok {
		cfg.SystemName = v
	}
	if v, ok := env["LOG_LEVEL"]; ok {
		cfg.LogLevel = v
	}
	return cfg, nil
}
