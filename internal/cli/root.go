// Package cli implements the verbseed CLI commands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rcliao/verbseed/internal/logging"
	"github.com/rcliao/verbseed/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath   string
	logLevel string
	logFile  string
	envFile  string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "verbseed",
	Short: "Expand Spanish verb seeds into full conjugation tables",
	Long: "Expands a seed list of Spanish verbs (infinitive + irregular flag) into presente, preterito, " +
		"imperfecto, futuro and condicional tables, and keeps the result in a SQLite verb store.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $VERBSEED_DB or ~/.verbseed/verbs.db)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, off (default: $VERBSEED_LOG_LEVEL or info)")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write JSON logs to this file instead of stderr")
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file loaded before reading configuration")
}

func setup(cmd *cobra.Command, args []string) error {
	// Variables already set in the environment win over the file.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	level := logLevel
	if level == "" {
		level = os.Getenv("VERBSEED_LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	return logging.Setup(level, logFile, cmd.ErrOrStderr())
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("VERBSEED_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".verbseed", "verbs.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func printJSON(cmd *cobra.Command, v interface{}) {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
