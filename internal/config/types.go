package config

import "time"

// ProviderType identifies an AI gateway provider.
type ProviderType string

const (
	ProviderGoogle ProviderType = "google"
	ProviderOpenAI ProviderType = "openai"
)

// StorageDriver selects the medium used for saved trends.
type StorageDriver string

const (
	StorageSQLite StorageDriver = "sqlite"
	StorageRedis  StorageDriver = "redis"
	StorageFile   StorageDriver = "file"
)

// Config is the top-level ytgap configuration, corresponding to .ytgap.yml.
type Config struct {
	Provider     ProviderType  `yaml:"provider" koanf:"provider"`
	Model        string        `yaml:"model" koanf:"model"`
	BaseURL      string        `yaml:"base_url,omitempty" koanf:"base_url"`
	RateLimitRPM int           `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
	Server       ServerConfig  `yaml:"server" koanf:"server"`
	Client       ClientConfig  `yaml:"client" koanf:"client"`
	Storage      StorageConfig `yaml:"storage" koanf:"storage"`
	Log          LogConfig     `yaml:"log" koanf:"log"`
	Output       OutputConfig  `yaml:"output" koanf:"output"`
}

// ServerConfig holds settings for the trends endpoint.
type ServerConfig struct {
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestTimeout  time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
}

// ClientConfig holds settings for talking to a deployed endpoint.
type ClientConfig struct {
	BackendURL string        `yaml:"backend_url" koanf:"backend_url"`
	Timeout    time.Duration `yaml:"timeout" koanf:"timeout"`
}

// StorageConfig holds settings for saved trend persistence.
type StorageConfig struct {
	Driver    StorageDriver `yaml:"driver" koanf:"driver"`
	Path      string        `yaml:"path" koanf:"path"`
	RedisAddr string        `yaml:"redis_addr" koanf:"redis_addr"`
	RedisDB   int           `yaml:"redis_db" koanf:"redis_db"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}

// OutputConfig holds CLI output settings.
type OutputConfig struct {
	Color bool `yaml:"color" koanf:"color"`
}
