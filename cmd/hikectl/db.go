package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hikingbuddies/listings/internal/database"
	"github.com/hikingbuddies/listings/internal/repo"
	"github.com/hikingbuddies/listings/internal/seed"
	"github.com/hikingbuddies/listings/internal/service"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dsn, err := databaseURL(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pool, err := database.Open(ctx, dsn)
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := database.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			slog.Info("migrations applied", "count", n)
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in mountain list into an empty database",
		Long: `seed inserts the built-in New Hampshire mountain names. It does nothing
once the mountains table holds any row, so it is safe to run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dsn, err := databaseURL(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pool, err := database.Open(ctx, dsn)
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := seed.LoadMountains(ctx, service.NewMountainService(repo.NewMountainRepo(pool)))
			if err != nil {
				return err
			}
			slog.Info("mountains seeded", "inserted", n)
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d mountain(s)\n", n)
			return nil
		},
	}
}
