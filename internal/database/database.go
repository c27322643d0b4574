// Package database opens the Postgres pool and brings its schema up to date.
// It is shared by the API server and hikectl.
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/hikingbuddies/listings/migrations"
)

// Open creates a pool on dsn and verifies the database is reachable.
// The caller owns the pool and must Close it.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("database.Open: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database.Open: ping: %w", err)
	}
	return pool, nil
}

// Migrate applies every pending embedded migration through pool and
// returns how many ran. goose needs a *sql.DB, so one is layered on the
// pool for the duration of the call.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	n, err := migrations.Up(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("database.Migrate: %w", err)
	}
	return n, nil
}
