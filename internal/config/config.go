// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds everything the binaries read from the environment
type Config struct {
	// HTTPAddr is where the web dashboard listens
	HTTPAddr string `env:"DICESTATS_HTTP_ADDR" envDefault:":8080"`

	// Language is the default UI language (en or ru)
	Language string `env:"DICESTATS_LANGUAGE" envDefault:"en"`

	// Seed fixes the dice roller's random source; 0 seeds from the clock
	Seed uint64 `env:"DICESTATS_SEED" envDefault:"0"`

	LogLevel  string `env:"DICESTATS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DICESTATS_LOG_FORMAT" envDefault:"json"`

	Discord Discord
}

// Discord holds the bot credentials
type Discord struct {
	Token         string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID registers commands for one server only, handy during development
	GuildID string `env:"GUILD_ID"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LanguageTag parses the configured language, falling back to English
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}
