package cmd

import (
	"fmt"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/contract"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/runstore"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This avoids input-directory validation and full config processing for
// simple store operations.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.Backend = backend
	cfg.DBConnect = connStr

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyCmd focused on run history management.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage historical run tracking",
	Long: `Manage historical run data used for trend tracking across invocations.

When enabled, every build run is tracked, storing:
- Run metadata (timestamp, configuration, duration, outcome)
- Per-entry season metrics (positions, gaps, completeness)

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run tracking statistics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  f1quali history status --history-backend sqlite`,
}

// historyStatusCmd shows run-tracking status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about historical run tracking.

Displays:
- Backend type and connection status
- Total number of runs and stored entries
- Last and oldest run timestamps

Examples:
  # Check run tracking status
  f1quali history status --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := runstore.NewRunStore(cfg.Backend, cfg.DBConnect)
		if err != nil {
			contract.LogFatal("Failed to open run store", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		runstore.PrintRunStoreStatus(status)
	},
}

// historyClearCmd clears the run history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical run tracking data",
	Long: `Delete all stored runs and their season metrics.

WARNING: This action cannot be undone.

Examples:
  # Clear and start fresh
  f1quali history clear --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := runstore.NewRunStore(cfg.Backend, cfg.DBConnect)
		if err != nil {
			contract.LogFatal("Failed to open run store", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear history data", err)
		}
		fmt.Println("History data cleared successfully.")
	},
}

// historyMigrateCmd runs database migrations for the run store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  f1quali history migrate --history-backend sqlite

  # Rollback to initial state
  f1quali history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := runstore.Migrate(cfg.Backend, cfg.DBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
