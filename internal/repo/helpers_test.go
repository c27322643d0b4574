package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/hikingbuddies/listings/testutil"
)

// newTestTx is shorthand for testutil.NewTx.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	return testutil.NewTx(t)
}

// insertMountain adds a mountain with a unique name inside tx and returns its ID.
func insertMountain(t *testing.T, tx pgx.Tx, name string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := tx.QueryRow(context.Background(),
		`INSERT INTO mountains (name) VALUES ($1) RETURNING id`,
		name+" "+uuid.NewString()[:8],
	).Scan(&id)
	require.NoError(t, err, "insert mountain")
	return id
}
