package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// DefaultConfigPath is the file written by the wizard and read by the CLI.
const DefaultConfigPath = ".ytgap.yml"

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to ytgap! Let's configure your setup.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select AI provider",
		Items: []string{string(ProviderGoogle), string(ProviderOpenAI)},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)

	// 2. Model.
	modelPrompt := promptui.Prompt{
		Label:   "Model",
		Default: DefaultModel(cfg.Provider),
	}
	if cfg.Model, err = modelPrompt.Run(); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	// 3. Backend URL for the search client.
	backendPrompt := promptui.Prompt{
		Label:   "Deployed trends endpoint URL (leave as is to run locally)",
		Default: cfg.Client.BackendURL,
	}
	if cfg.Client.BackendURL, err = backendPrompt.Run(); err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}

	// 4. Storage driver.
	storagePrompt := promptui.Select{
		Label: "Where should saved trends live",
		Items: []string{string(StorageSQLite), string(StorageFile), string(StorageRedis)},
	}
	_, driverStr, err := storagePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("storage selection: %w", err)
	}
	cfg.Storage.Driver = StorageDriver(driverStr)

	if cfg.Storage.Driver == StorageRedis {
		addrPrompt := promptui.Prompt{
			Label:   "Redis address",
			Default: cfg.Storage.RedisAddr,
		}
		if cfg.Storage.RedisAddr, err = addrPrompt.Run(); err != nil {
			return nil, fmt.Errorf("redis address: %w", err)
		}
	}

	// 5. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Check for API key.
	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" && os.Getenv(envVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment before running ytgap server.\n", envVar)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
