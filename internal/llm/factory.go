package llm

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissingCredential is returned when the API key for the selected provider
// is not present in the environment.
var ErrMissingCredential = errors.New("missing AI provider credential")

// Settings selects and tunes the provider built by NewProvider.
type Settings struct {
	Provider string
	Model    string
	// BaseURL overrides the provider endpoint. Empty means the public API.
	BaseURL string
	// RateLimitRPM caps requests per minute; 0 disables limiting.
	RateLimitRPM int
}

// credentialEnvVars lists, per provider, the environment variables checked
// for an API key in order of preference.
var credentialEnvVars = map[string][]string{
	"google": {"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY"},
	"openai": {"OPENAI_API_KEY", "API_KEY"},
}

// CredentialEnvVars returns the environment variables consulted for the
// given provider's API key.
func CredentialEnvVars(provider string) []string {
	return credentialEnvVars[provider]
}

// LookupCredential returns the first non-empty API key for the provider.
func LookupCredential(provider string) (string, error) {
	vars, ok := credentialEnvVars[provider]
	if !ok {
		return "", fmt.Errorf("unsupported provider type: %s", provider)
	}
	for _, name := range vars {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: set %s", ErrMissingCredential, vars[0])
}

// NewProvider creates the provider described by s. The credential is read
// from the environment once, here; a missing key is reported immediately so
// callers can refuse to start.
// Supported provider types: "google", "openai".
func NewProvider(s Settings) (Provider, error) {
	apiKey, err := LookupCredential(s.Provider)
	if err != nil {
		return nil, err
	}

	var p Provider
	switch s.Provider {
	case "google":
		p = NewGeminiProvider(apiKey, s.Model, s.BaseURL)
	case "openai":
		p = NewOpenAIProvider(apiKey, s.Model, s.BaseURL)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", s.Provider)
	}

	if s.RateLimitRPM > 0 {
		p = NewRateLimitedProvider(p, s.RateLimitRPM)
	}
	return p, nil
}
