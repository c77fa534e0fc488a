package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds CLI defaults taken from the environment. Flags override it.
type Config struct {
	Verbose   bool   `env:"COMPOSITE_VERBOSE" envDefault:"false"`
	Package   string `env:"COMPOSITE_PACKAGE" envDefault:"main"`
	Separator string `env:"COMPOSITE_SEPARATOR"`
	Prompt    string `env:"COMPOSITE_PROMPT" envDefault:"composite> "`
	History   string `env:"COMPOSITE_HISTORY"`
}

// loadConfig reads an optional .env file and parses the environment.
func loadConfig(envFiles ...string) (Config, error) {
	// The .env file is optional
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
