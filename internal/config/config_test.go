package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderGoogle {
		t.Errorf("expected default provider %q, got %q", ProviderGoogle, cfg.Provider)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Client.Timeout != 90*time.Second {
		t.Errorf("expected default client timeout 90s, got %s", cfg.Client.Timeout)
	}
	if cfg.Storage.Driver != StorageSQLite {
		t.Errorf("expected default storage driver %q, got %q", StorageSQLite, cfg.Storage.Driver)
	}
	if cfg.Client.BackendURL != PlaceholderBackendURL {
		t.Errorf("expected placeholder backend url, got %q", cfg.Client.BackendURL)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ytgap.yml")

	original := DefaultConfig()
	original.Provider = ProviderOpenAI
	original.Model = "gpt-4o"
	original.RateLimitRPM = 12
	original.Server.Port = 9090
	original.Server.RequestTimeout = 45 * time.Second
	original.Client.BackendURL = "https://gap.example.com/api/trends"
	original.Storage.Driver = StorageFile
	original.Storage.Path = filepath.Join(dir, "saved.json")

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Provider != original.Provider {
		t.Errorf("provider: got %q, want %q", loaded.Provider, original.Provider)
	}
	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.RateLimitRPM != original.RateLimitRPM {
		t.Errorf("rate_limit_rpm: got %d, want %d", loaded.RateLimitRPM, original.RateLimitRPM)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("server.port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if loaded.Server.RequestTimeout != original.Server.RequestTimeout {
		t.Errorf("server.request_timeout: got %s, want %s", loaded.Server.RequestTimeout, original.Server.RequestTimeout)
	}
	if loaded.Client.BackendURL != original.Client.BackendURL {
		t.Errorf("client.backend_url: got %q, want %q", loaded.Client.BackendURL, original.Client.BackendURL)
	}
	if loaded.Storage.Driver != original.Storage.Driver {
		t.Errorf("storage.driver: got %q, want %q", loaded.Storage.Driver, original.Storage.Driver)
	}
	if loaded.Storage.Path != original.Storage.Path {
		t.Errorf("storage.path: got %q, want %q", loaded.Storage.Path, original.Storage.Path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Provider != ProviderGoogle {
		t.Errorf("expected default provider, got %q", cfg.Provider)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("YTGAP_PROVIDER", "openai")
	t.Setenv("YTGAP_SERVER__PORT", "3000")
	t.Setenv("YTGAP_CLIENT__BACKEND_URL", "https://override.example.com/api/trends")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Provider != ProviderOpenAI {
		t.Errorf("env override failed: got %q, want %q", loaded.Provider, ProviderOpenAI)
	}
	if loaded.Server.Port != 3000 {
		t.Errorf("nested env override failed: got %d, want 3000", loaded.Server.Port)
	}
	if loaded.Client.BackendURL != "https://override.example.com/api/trends" {
		t.Errorf("nested env override failed: got %q", loaded.Client.BackendURL)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"YTGAP_PROVIDER":            "provider",
		"YTGAP_RATE_LIMIT_RPM":      "rate_limit_rpm",
		"YTGAP_STORAGE__REDIS_ADDR": "storage.redis_addr",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty provider", func(c *Config) { c.Provider = "" }},
		{"invalid provider", func(c *Config) { c.Provider = "invalid" }},
		{"empty model", func(c *Config) { c.Model = "" }},
		{"negative rpm", func(c *Config) { c.RateLimitRPM = -1 }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"negative client timeout", func(c *Config) { c.Client.Timeout = -time.Second }},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "s3" }},
		{"redis without addr", func(c *Config) {
			c.Storage.Driver = StorageRedis
			c.Storage.RedisAddr = ""
		}},
		{"file without path", func(c *Config) {
			c.Storage.Driver = StorageFile
			c.Storage.Path = ""
		}},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDefaultModel(t *testing.T) {
	if got := DefaultModel(ProviderOpenAI); got != "gpt-4o-mini" {
		t.Errorf("DefaultModel(openai) = %q", got)
	}
	// Unknown providers fall back to the google default.
	if got := DefaultModel("unknown"); got != DefaultModel(ProviderGoogle) {
		t.Errorf("expected fallback to google model, got %q", got)
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider ProviderType
		want     string
	}{
		{ProviderGoogle, "GEMINI_API_KEY"},
		{ProviderOpenAI, "OPENAI_API_KEY"},
		{"unknown", ""},
	}
	for _, tt := range tests {
		got := APIKeyEnvVar(tt.provider)
		if got != tt.want {
			t.Errorf("APIKeyEnvVar(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}

func TestGatewaySettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimitRPM = 7
	s := cfg.GatewaySettings()
	if s.Provider != "google" || s.Model != cfg.Model || s.RateLimitRPM != 7 {
		t.Errorf("unexpected settings: %+v", s)
	}
}
