// Package main implements the letter_agent CLI for composing tone-aware letters.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/letter-studio/internal/config"
	"github.com/jonathan/letter-studio/internal/logging"
)

var (
	configPath string
	verbose    bool

	appConfig config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "letter_agent",
	Short: "Compose formatted letters from structured points",
	Long: `letter_agent turns sender and recipient details, a subject and a list of
short points into a fully formatted letter, phrased for the chosen tone
(formal, semi-formal, casual) and language register (english, hindi, hinglish).

Letters can be printed as plain text or JSON, rendered to HTML or LaTeX,
printed to PDF through headless Chrome, or served over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Verbose = true
		}
		merged := cfg.MergeWithDefaults(config.Default())
		if err := merged.Validate(); err != nil {
			return err
		}
		appConfig = merged

		logger, err = logging.New(appConfig.Log)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
