package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName    string `koanf:"db_name"`
	Port      string `koanf:"port"`
	LogLevel  string `koanf:"log_level"`
	ProjectID string `koanf:"project_id"`

	TursoPrimaryURL string `koanf:"turso_primary_url"`
	TursoAuthToken  string `koanf:"turso_auth_token"`

	SlackToken     string `koanf:"slack_token"`
	SlackChannelID string `koanf:"slack_channel_id"`

	// MaxAttempts bounds how often a conflicting match is recomputed.
	MaxAttempts int `koanf:"max_attempts"`
	RetryBaseMS int `koanf:"retry_base_ms"`
}

// RetryBase returns the initial conflict backoff.
func (c Config) RetryBase() time.Duration {
	return time.Duration(c.RetryBaseMS) * time.Millisecond
}

// SlackEnabled reports whether both a token and a channel are configured.
func (c Config) SlackEnabled() bool {
	return c.SlackToken != "" && c.SlackChannelID != ""
}
