// Package cli implements the command-line interface for cubekit.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mstern/cubekit/internal/config"
	"github.com/mstern/cubekit/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubekit",
	Short: "Rubik's cube state model and move journal",
	Long: `cubekit models a 3x3x3 Rubik's cube as 26 geometric pieces and applies
face turns written in standard notation (F Fi B Bi L Li R Ri U Ui D Di).

Apply sequences, scramble, record sessions to a local database, and
replay them move by move.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubekit/cubekit.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubekit/config.yaml)")
}

// openDB opens the database from the --db flag or the default path and
// applies pending migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// loadConfig loads the config from the --config flag or the default path.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}
