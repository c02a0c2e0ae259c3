package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_MissingKey(t *testing.T) {
	for _, key := range []string{"", "   "} {
		_, err := FromEnv(env(map[string]string{EnvAPIKey: key}))
		if !errors.Is(err, ErrMissingAPIKey) {
			t.Errorf("key %q: err = %v, want ErrMissingAPIKey", key, err)
		}
	}
	if ErrMissingAPIKey.Error() != "GEMINI_API_KEY is not set in the environment variables" {
		t.Errorf("unexpected message: %s", ErrMissingAPIKey)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{EnvAPIKey: "secret"}))
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	want := &Config{
		App: AppConfig{Name: "countrybot"},
		Provider: ProviderConfig{
			Name:    ProviderOpenAI,
			APIKey:  "secret",
			Model:   "gemini-2.0-flash",
			BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai/",
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		EnvAPIKey:   "secret",
		EnvProvider: "GoogleAI",
		EnvModel:    "gemini-2.5-flash",
		EnvBaseURL:  "http://localhost:8080/v1",
		EnvEventLog: "logs/events.jsonl",
	}))
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Provider.Name != ProviderGoogleAI || cfg.Provider.Model != "gemini-2.5-flash" ||
		cfg.Provider.BaseURL != "http://localhost:8080/v1" || cfg.Logging.EventLog != "logs/events.jsonl" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestFromEnv_UnknownProvider(t *testing.T) {
	_, err := FromEnv(env(map[string]string{EnvAPIKey: "secret", EnvProvider: "ollama"}))
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	os.Unsetenv(EnvAPIKey)
	t.Setenv(EnvModel, "from-environment")

	path := filepath.Join(t.TempDir(), ".env")
	content := "GEMINI_API_KEY=from-file\nCOUNTRYBOT_MODEL=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv(EnvAPIKey) })

	if cfg.Provider.APIKey != "from-file" {
		t.Errorf("APIKey = %q", cfg.Provider.APIKey)
	}
	// Existing variables win over the file.
	if cfg.Provider.Model != "from-environment" {
		t.Errorf("Model = %q", cfg.Provider.Model)
	}
}

func TestLoadConfig_MissingEnvFileIsFine(t *testing.T) {
	t.Setenv(EnvAPIKey, "secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Provider.APIKey != "secret" {
		t.Errorf("APIKey = %q", cfg.Provider.APIKey)
	}
}
