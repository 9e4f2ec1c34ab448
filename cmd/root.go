package cmd

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ytgap/internal/config"
	"github.com/ziadkadry99/ytgap/internal/logger"
	"github.com/ziadkadry99/ytgap/internal/output"
)

var (
	cfgFile string
	envFile string
	verbose bool
	noColor bool

	cfg     *config.Config
	log     zerolog.Logger
	printer = output.NewPrinter(false)
)

var rootCmd = &cobra.Command{
	Use:   "ytgap",
	Short: "Find YouTube topics with high demand and little content",
	Long: `ytgap asks an AI model for YouTube search terms that many people look
for on a given day but that few videos cover yet. It can serve the
trends endpoint, query a deployed one, keep a list of saved terms and
generate video ideas for any of them.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints any error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printer.Error("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigPath, "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with API keys")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setup loads the environment and configuration and builds the logger and
// printer shared by all commands.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	c, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = c

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log = logger.New(logger.Config{Level: level, Format: cfg.Log.Format})
	logger.SetGlobal(log)

	printer = output.NewPrinter(!noColor && output.ResolveColors(cfg.Output.Color))
	return nil
}
