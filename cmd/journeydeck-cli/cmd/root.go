package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"journeydeck/internal/adapters/format"
	"journeydeck/internal/config"
	"journeydeck/internal/logger"
)

var (
	configPath string
	debug      bool
	outputFlag string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "journeydeck-cli",
	Short: "CLI for the XO Launchpad journey analysis deck",
	Long: `journeydeck-cli prints the deployment journeys and the signup strategy
slides from the command line.

It can list and reveal journeys step by step, show slides, replay a
navigation script against a fresh session, and export all content to SQLite.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loader := config.NewLoader()
		var err error
		if configPath != "" {
			cfg, err = loader.LoadFromFile(configPath)
		} else {
			cfg, err = loader.Load()
		}
		if err != nil {
			return err
		}
		if debug {
			cfg.Log.Debug = true
		}

		if err := logger.Init(logger.Config{
			Debug:  cfg.Log.Debug,
			Dir:    cfg.Log.Dir,
			Stderr: true,
		}); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger.Debug("config loaded", "file", loader.ConfigFileUsed())
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a journeydeck.yaml config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every step at debug level to stderr")
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

// addOutputFlag registers --output on a command that supports structured output
func addOutputFlag(c *cobra.Command) {
	c.Flags().StringVarP(&outputFlag, "output", "o", "text", "output format: text, json or yaml")
}

// outputFormat parses the --output flag
func outputFormat() (format.Format, error) {
	return format.Parse(outputFlag)
}
