package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the local country used when a
// value does not carry one, and display defaults.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// LocalCountry is the ISO 3166-1 alpha-2 code of the country assumed for
	// values that do not carry one (phone roaming checks, built addresses).
	LocalCountry string `env:"LOCAL_COUNTRY" env-default:"US" yaml:"localCountry"`

	// Units contains measurement display defaults
	Units struct {
		// DefaultLength is the abbreviation of the length unit used when none is requested
		DefaultLength string `env:"UNITS_DEFAULT_LENGTH" env-default:"m" yaml:"defaultLength"`
	} `yaml:"units"`
}

// Load receives the path for yaml config file and returns a filled Config
// struct. A missing file is not an error: configuration then comes from the
// environment and tag defaults alone.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
