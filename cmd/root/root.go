// Package root contains the root command for the application
package root

import (
	"github.com/spf13/cobra"

	"spendlens/internal/config"
	"spendlens/internal/logging"
	"spendlens/internal/store"
)

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cfg is the resolved application configuration, populated before any
	// subcommand runs.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "spendlens",
		Short: "A CLI tool to categorize expenses and analyze spending patterns.",
		Long: `spendlens categorizes free-text expense descriptions into spending
categories and produces a structured analysis of spending history:
summaries, trends, anomalies, forecasts and recommendations.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to spendlens!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Warn("Falling back to default configuration")
				cfg = &config.Config{}
			}
			Cfg = cfg

			if cfg.Log.Level != "" {
				Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			} else {
				Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLogging())
			}
			logging.SetDefaultLogger(Log)

			if len(cfg.CSV.Delimiter) == 1 {
				store.SetDelimiter(rune(cfg.CSV.Delimiter[0]))
			}
			store.SetDateFormat(cfg.CSV.DateFormat)
		},
	}

	// Shared flags for file-based commands
	InputFile  string
	OutputFile string
	Format     string

	// Classify command flags
	Description string
	Amount      string
	Suggest     int
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&InputFile, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&OutputFile, "output", "o", "", "Output file")
}
