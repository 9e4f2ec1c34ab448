package config

import (
	"os"
	"path/filepath"
	"time"
)

// PlaceholderBackendURL is written into fresh configs. Clients refuse to use
// it until it is replaced with a deployed endpoint.
const PlaceholderBackendURL = "https://YOUR_BACKEND_URL/api/trends"

// defaultModels maps each provider to the model used when none is configured.
var defaultModels = map[ProviderType]string{
	ProviderGoogle: "gemini-2.5-flash",
	ProviderOpenAI: "gpt-4o-mini",
}

// DefaultModel returns the default model for the given provider.
func DefaultModel(p ProviderType) string {
	if m, ok := defaultModels[p]; ok {
		return m
	}
	return defaultModels[ProviderGoogle]
}

// DefaultDataDir returns the directory holding the local database and files.
func DefaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".ytgap")
	}
	return ".ytgap"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:     ProviderGoogle,
		Model:        DefaultModel(ProviderGoogle),
		RateLimitRPM: 30,
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: true,
			RequestTimeout:  90 * time.Second,
		},
		Client: ClientConfig{
			BackendURL: PlaceholderBackendURL,
			Timeout:    90 * time.Second,
		},
		Storage: StorageConfig{
			Driver:    StorageSQLite,
			Path:      filepath.Join(DefaultDataDir(), "ytgap.db"),
			RedisAddr: "localhost:6379",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}
