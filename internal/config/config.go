package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/ytgap/internal/llm"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "YTGAP_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (YTGAP_*). A double underscore separates
// nested keys: YTGAP_CLIENT__BACKEND_URL sets client.backend_url.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps YTGAP_SERVER__PORT to server.port.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validProviders = map[ProviderType]bool{
	ProviderGoogle: true,
	ProviderOpenAI: true,
}

var validDrivers = map[StorageDriver]bool{
	StorageSQLite: true,
	StorageRedis:  true,
	StorageFile:   true,
}

var validLogFormats = map[string]bool{
	"console": true,
	"json":    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if !validProviders[c.Provider] {
		return fmt.Errorf("invalid provider %q: must be one of google, openai", c.Provider)
	}

	if c.Model == "" {
		return fmt.Errorf("model is required")
	}

	if c.RateLimitRPM < 0 {
		return fmt.Errorf("rate_limit_rpm must be non-negative")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout must be non-negative")
	}
	if c.Client.Timeout < 0 {
		return fmt.Errorf("client.timeout must be non-negative")
	}

	if !validDrivers[c.Storage.Driver] {
		return fmt.Errorf("invalid storage.driver %q: must be one of sqlite, redis, file", c.Storage.Driver)
	}
	if c.Storage.Driver == StorageRedis && c.Storage.RedisAddr == "" {
		return fmt.Errorf("storage.redis_addr is required for the redis driver")
	}
	if c.Storage.Driver != StorageRedis && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required for the %s driver", c.Storage.Driver)
	}

	if c.Log.Format != "" && !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format)
	}

	return nil
}

// GatewaySettings returns the provider settings for the AI gateway.
func (c *Config) GatewaySettings() llm.Settings {
	return llm.Settings{
		Provider:     string(c.Provider),
		Model:        c.Model,
		BaseURL:      c.BaseURL,
		RateLimitRPM: c.RateLimitRPM,
	}
}

// APIKeyEnvVar returns the preferred environment variable name for the API
// key of the given provider.
func APIKeyEnvVar(provider ProviderType) string {
	vars := llm.CredentialEnvVars(string(provider))
	if len(vars) == 0 {
		return ""
	}
	return vars[0]
}
