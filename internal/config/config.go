package config

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "LADDER_"

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		DBName:      "ladder.db",
		Port:        "8080",
		LogLevel:    "info",
		MaxAttempts: 5,
		RetryBaseMS: 5,
	}
}

// Load builds a Config by layering, from lowest to highest precedence:
//  1. defaults
//  2. a YAML file if LADDER_CONFIG is set
//  3. environment variables prefixed LADDER_ (a .env file is loaded first)
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, reading from environment variables")
	}

	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, err
		}
	}

	// LADDER_SLACK_CHANNEL_ID -> slack_channel_id
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields every binary depends on.
func (c Config) Validate() error {
	var errs []error
	if c.DBName == "" && c.TursoPrimaryURL == "" {
		errs = append(errs, errors.New("db_name or turso_primary_url must be set"))
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, errors.New("max_attempts must be at least 1"))
	}
	if c.RetryBaseMS < 0 {
		errs = append(errs, errors.New("retry_base_ms must not be negative"))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
