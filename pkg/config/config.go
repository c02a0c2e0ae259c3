package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvAPIKey   = "GEMINI_API_KEY"
	EnvProvider = "COUNTRYBOT_PROVIDER"
	EnvModel    = "COUNTRYBOT_MODEL"
	EnvBaseURL  = "COUNTRYBOT_BASE_URL"
	EnvEventLog = "COUNTRYBOT_EVENT_LOG"

	ProviderOpenAI   = "openai"
	ProviderGoogleAI = "googleai"

	DefaultModel   = "gemini-2.0-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
)

var ErrMissingAPIKey = errors.New(EnvAPIKey + " is not set in the environment variables")

type Config struct {
	App      AppConfig
	Provider ProviderConfig
	Logging  LoggingConfig
}

type AppConfig struct {
	Name string
}

type ProviderConfig struct {
	Name    string
	APIKey  string
	Model   string
	BaseURL string
}

type LoggingConfig struct {
	// EventLog is the JSONL event file. Empty disables event logging.
	EventLog string
}

// LoadConfig reads the optional .env files, then the environment.
// A missing API key is the only fatal condition.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a getenv-style lookup.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		App: AppConfig{Name: "countrybot"},
		Provider: ProviderConfig{
			Name:    ProviderOpenAI,
			APIKey:  strings.TrimSpace(getenv(EnvAPIKey)),
			Model:   DefaultModel,
			BaseURL: DefaultBaseURL,
		},
		Logging: LoggingConfig{EventLog: strings.TrimSpace(getenv(EnvEventLog))},
	}

	if cfg.Provider.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if v := strings.TrimSpace(getenv(EnvProvider)); v != "" {
		cfg.Provider.Name = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvModel)); v != "" {
		cfg.Provider.Model = v
	}
	if v := strings.TrimSpace(getenv(EnvBaseURL)); v != "" {
		cfg.Provider.BaseURL = v
	}

	switch cfg.Provider.Name {
	case ProviderOpenAI, ProviderGoogleAI:
	default:
		return nil, fmt.Errorf("unsupported %s %q (want %s or %s)", EnvProvider, cfg.Provider.Name, ProviderOpenAI, ProviderGoogleAI)
	}

	return cfg, nil
}
