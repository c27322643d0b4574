package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hikingbuddies/listings/internal/domain"
)

// MountainRepo defines the persistence operations for the mountain reference list.
type MountainRepo interface {
	// List returns all mountains ordered by name.
	List(ctx context.Context) ([]domain.Mountain, error)

	// GetByID retrieves a mountain by primary key.
	// Returns domain.ErrNotFound if no mountain with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Mountain, error)

	// GetByName retrieves a mountain by name, ignoring case.
	// Returns domain.ErrNotFound if no mountain has that name.
	GetByName(ctx context.Context, name string) (domain.Mountain, error)

	// SeedIfEmpty inserts names only when the table has no rows yet and
	// reports how many rows were inserted. A populated table is left untouched.
	SeedIfEmpty(ctx context.Context, names []string) (int64, error)
}

// pgMountainRepo is the Postgres implementation of MountainRepo.
type pgMountainRepo struct {
	db db
}

// NewMountainRepo constructs a MountainRepo backed by the provided db connection.
func NewMountainRepo(db db) MountainRepo {
	return &pgMountainRepo{db: db}
}

func (r *pgMountainRepo) List(ctx context.Context) ([]domain.Mountain, error) {
	const q = `
		SELECT id, name, created_at
		FROM mountains
		ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.MountainRepo.List: %w", err)
	}
	defer rows.Close()

	mountains := []domain.Mountain{}
	for rows.Next() {
		m, err := scanMountain(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.MountainRepo.List: scan: %w", err)
		}
		mountains = append(mountains, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.MountainRepo.List: rows: %w", err)
	}
	return mountains, nil
}

func (r *pgMountainRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Mountain, error) {
	const q = `SELECT id, name, created_at FROM mountains WHERE id = @id`

	m, err := scanMountain(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Mountain{}, fmt.Errorf("repo.MountainRepo.GetByID: %w", err)
	}
	return m, nil
}

func (r *pgMountainRepo) GetByName(ctx context.Context, name string) (domain.Mountain, error) {
	const q = `SELECT id, name, created_at FROM mountains WHERE lower(name) = lower(@name)`

	m, err := scanMountain(r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name}))
	if err != nil {
		return domain.Mountain{}, fmt.Errorf("repo.MountainRepo.GetByName: %w", err)
	}
	return m, nil
}

// SeedIfEmpty skips names that collide with an existing one on lower(name).
func (r *pgMountainRepo) SeedIfEmpty(ctx context.Context, names []string) (int64, error) {
	const q = `
		INSERT INTO mountains (name)
		SELECT unnest(@names::text[])
		WHERE NOT EXISTS (SELECT 1 FROM mountains)
		ON CONFLICT DO NOTHING`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"names": names})
	if err != nil {
		return 0, fmt.Errorf("repo.MountainRepo.SeedIfEmpty: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanMountain maps a single database row into a domain.Mountain.
func scanMountain(s scanner) (domain.Mountain, error) {
	var (
		m  domain.Mountain
		id pgtype.UUID
	)
	if err := s.Scan(&id, &m.Name, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Mountain{}, domain.ErrNotFound
		}
		return domain.Mountain{}, err
	}
	m.ID = uuid.UUID(id.Bytes)
	return m, nil
}
