package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ytgap/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ytgap configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose the AI provider, the backend URL and where saved trends live, and writes the config file.`,
	// The wizard replaces whatever config exists, so an invalid one must not block it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
