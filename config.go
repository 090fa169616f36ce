package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	OUTPUT_TEXT = "text"
	OUTPUT_JSON = "json"
)

type Config struct {
	LISTEN_ADDR   string        `env:"LISTEN_ADDR" envDefault:":1200"`
	LOG_LEVEL     string        `env:"LOG_LEVEL" envDefault:"info"`
	LOG_PRETTY    bool          `env:"LOG_PRETTY" envDefault:"false"`
	OUTPUT_FORMAT string        `env:"OUTPUT_FORMAT" envDefault:"text"`
	PROMPT        string        `env:"PROMPT" envDefault:"Enter Base64 URL string: "`
}

// NewConfigFromEnv reads the process environment, after merging in the given
// .env files (or ./.env when none are named). Missing .env files are fine.
func NewConfigFromEnv(envFiles ...string) (Config, error) {
	err := godotenv.Load(envFiles...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}
	c := Config{}
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LOG_LEVEL); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	switch c.OUTPUT_FORMAT {
	case OUTPUT_TEXT, OUTPUT_JSON:
	default:
		return Config{}, fmt.Errorf("OUTPUT_FORMAT must be %q or %q, got %q", OUTPUT_TEXT, OUTPUT_JSON, c.OUTPUT_FORMAT)
	}
	return c, nil
}

// Level is the parsed LOG_LEVEL. NewConfigFromEnv has already validated it.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LOG_LEVEL)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
