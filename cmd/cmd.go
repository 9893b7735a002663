// Package cmd defines the command-line interface for f1quali.
package cmd

import (
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/contract"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("input-dir", "i", schema.DefaultInputDir, "Directory holding the per-year qualifying CSV tables")
	rootCmd.PersistentFlags().StringP("output-dir", "o", schema.DefaultOutputDir, "Directory the timeline document is written to")
	rootCmd.PersistentFlags().StringP("filename", "f", schema.DefaultOutputFileName, "Timeline document filename inside the output directory")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for gap values in console output")
	rootCmd.PersistentFlags().String("history-backend", "", "Run history backend: sqlite or mysql or postgres or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgres (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
