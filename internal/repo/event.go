// Package repo contains all database access logic for the Hiking Buddies API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hikingbuddies/listings/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgForeignKeyViolation is the SQLSTATE Postgres raises when mountain_id
// references a mountain that does not exist.
const pgForeignKeyViolation = "23503"

// EventRepo defines the persistence operations for Events.
// Every read joins the owning mountain so MountainName is always populated.
type EventRepo interface {
	// Create inserts a new event and returns the persisted record.
	// Returns domain.ErrValidation if the mountain does not exist.
	Create(ctx context.Context, event domain.Event) (domain.Event, error)

	// GetByID retrieves a single event by its UUID primary key.
	// Returns domain.ErrNotFound if no event with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error)

	// ListPaged returns one page of events matching the filter, ordered by
	// start date then hike time, together with the total number of matches.
	ListPaged(ctx context.Context, f domain.EventFilter, p domain.PaginationParams) ([]domain.Event, int64, error)

	// List returns every event matching the filter in the same order as ListPaged.
	List(ctx context.Context, f domain.EventFilter) ([]domain.Event, error)

	// Delete removes an event by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgEventRepo is the Postgres implementation of EventRepo.
type pgEventRepo struct {
	db db
}

// NewEventRepo constructs an EventRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewEventRepo(db db) EventRepo {
	return &pgEventRepo{db: db}
}

const eventColumns = `
		e.id, e.mountain_id, m.name, e.start_date, e.arrive_time, e.hike_time,
		e.trailhead, e.distance_miles, e.pace, e.dog_friendly, e.fb_link,
		e.organizer, e.notes, e.created_at, e.updated_at`

// eventFilterClause treats every NULL parameter as "do not filter".
const eventFilterClause = `
		WHERE (@mountain_id::uuid IS NULL OR e.mountain_id = @mountain_id)
		  AND (@pace::text IS NULL OR e.pace = @pace)
		  AND (@max_miles::float8 IS NULL OR e.distance_miles <= @max_miles)
		  AND (@start_date::date IS NULL OR e.start_date = @start_date)
		  AND (@from_date::date IS NULL OR e.start_date >= @from_date)
		  AND (@dog_friendly::boolean IS NULL OR e.dog_friendly = @dog_friendly)`

const eventOrder = `
		ORDER BY e.start_date, e.hike_time NULLS LAST, e.created_at`

// Create inserts an event row and returns it joined with its mountain.
func (r *pgEventRepo) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	const q = `
		WITH e AS (
			INSERT INTO events (mountain_id, start_date, arrive_time, hike_time, trailhead,
			                    distance_miles, pace, dog_friendly, fb_link, organizer, notes)
			VALUES (@mountain_id, @start_date, @arrive_time, @hike_time, @trailhead,
			        @distance_miles, @pace, @dog_friendly, @fb_link, @organizer, @notes)
			RETURNING *
		)
		SELECT` + eventColumns + `
		FROM e
		JOIN mountains m ON m.id = e.mountain_id`

	args := pgx.NamedArgs{
		"mountain_id":    event.MountainID,
		"start_date":     event.StartDate,
		"arrive_time":    toPgTime(event.ArriveTime), // invalid becomes NULL
		"hike_time":      toPgTime(event.HikeTime),
		"trailhead":      event.Trailhead,
		"distance_miles": event.DistanceMiles,
		"pace":           string(event.Pace),
		"dog_friendly":   event.DogFriendly,
		"fb_link":        event.FBLink,
		"organizer":      event.Organizer,
		"notes":          event.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanEvent(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: %w: mountain does not exist", domain.ErrValidation)
		}
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an event by primary key.
func (r *pgEventRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	const q = `
		SELECT` + eventColumns + `
		FROM events e
		JOIN mountains m ON m.id = e.mountain_id
		WHERE e.id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of matching events and the total match count.
func (r *pgEventRepo) ListPaged(ctx context.Context, f domain.EventFilter, p domain.PaginationParams) ([]domain.Event, int64, error) {
	const countQ = `
		SELECT count(*)
		FROM events e` + eventFilterClause

	const q = `
		SELECT` + eventColumns + `
		FROM events e
		JOIN mountains m ON m.id = e.mountain_id` + eventFilterClause + eventOrder + `
		LIMIT @limit OFFSET @offset`

	args := filterArgs(f)

	var total int64
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.EventRepo.ListPaged: count: %w", err)
	}

	args["limit"] = p.Limit
	args["offset"] = p.Offset()

	events, err := r.query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.EventRepo.ListPaged: %w", err)
	}
	return events, total, nil
}

// List returns all matching events.
func (r *pgEventRepo) List(ctx context.Context, f domain.EventFilter) ([]domain.Event, error) {
	const q = `
		SELECT` + eventColumns + `
		FROM events e
		JOIN mountains m ON m.id = e.mountain_id` + eventFilterClause + eventOrder

	events, err := r.query(ctx, q, filterArgs(f))
	if err != nil {
		return nil, fmt.Errorf("repo.EventRepo.List: %w", err)
	}
	return events, nil
}

// Delete removes an event by primary key.
func (r *pgEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM events WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.EventRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.EventRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgEventRepo) query(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return events, nil
}

// filterArgs maps an EventFilter onto the named parameters of
// eventFilterClause. Nil pointers are sent as NULL.
func filterArgs(f domain.EventFilter) pgx.NamedArgs {
	var pace *string
	if f.Pace != nil {
		s := string(*f.Pace)
		pace = &s
	}
	return pgx.NamedArgs{
		"mountain_id":  f.MountainID,
		"pace":         pace,
		"max_miles":    f.MaxMiles,
		"start_date":   f.StartDate,
		"from_date":    f.From,
		"dog_friendly": f.DogFriendly,
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanEvent maps a single row selected with eventColumns into a domain.Event.
func scanEvent(s scanner) (domain.Event, error) {
	var (
		e          domain.Event
		id         pgtype.UUID
		mountainID pgtype.UUID
		startDate  pgtype.Date
		arrive     pgtype.Time
		hike       pgtype.Time
		pace       string
	)

	err := s.Scan(&id, &mountainID, &e.MountainName, &startDate, &arrive, &hike,
		&e.Trailhead, &e.DistanceMiles, &pace, &e.DogFriendly, &e.FBLink,
		&e.Organizer, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, domain.ErrNotFound
		}
		return domain.Event{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.MountainID = uuid.UUID(mountainID.Bytes)
	e.StartDate = startDate.Time
	e.ArriveTime = fromPgTime(arrive)
	e.HikeTime = fromPgTime(hike)
	e.Pace = domain.Pace(pace)

	return e, nil
}

func toPgTime(t *domain.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: t.Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) *domain.TimeOfDay {
	if !t.Valid {
		return nil
	}
	tod := domain.TimeOfDayFromMicroseconds(t.Microseconds)
	return &tod
}
