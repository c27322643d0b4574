// Package main is hikectl, the operator CLI for the listings service.
// It parses event descriptions offline and manages the database schema
// and reference data without starting the API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hikingbuddies/listings/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hikectl",
		Short: "Operator tools for the Hiking Buddies listings",
		Long: `hikectl works on the same parser and database as the API server.

parse reads a free-text event description and prints what the server would
pre-fill. migrate and seed prepare a database before the server first starts.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("database-url", "", "Postgres connection string (default: $DATABASE_URL)")

	root.AddCommand(newParseCmd(), newMigrateCmd(), newSeedCmd(), newVersionCmd())
	return root
}

// databaseURL prefers the --database-url flag and falls back to the
// environment the API server reads.
func databaseURL(cmd *cobra.Command) (string, error) {
	if dsn, _ := cmd.Flags().GetString("database-url"); dsn != "" {
		return dsn, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.DatabaseURL, nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
