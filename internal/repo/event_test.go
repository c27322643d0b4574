package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikingbuddies/listings/internal/domain"
	"github.com/hikingbuddies/listings/internal/repo"
)

// eventFixture returns a domain.Event on the given mountain with sensible
// defaults. Callers can override individual fields afterwards.
func eventFixture(mountainID uuid.UUID) domain.Event {
	arrive := domain.TimeOfDay{Hour: 7, Minute: 30}
	hike := domain.TimeOfDay{Hour: 8, Minute: 0}
	return domain.Event{
		MountainID:    mountainID,
		StartDate:     time.Date(2030, 7, 4, 0, 0, 0, 0, time.UTC),
		ArriveTime:    &arrive,
		HikeTime:      &hike,
		Trailhead:     "Ammonoosuc Ravine",
		DistanceMiles: 6.2,
		Pace:          domain.PaceBear,
		DogFriendly:   true,
		FBLink:        "https://fb.me/event123",
		Organizer:     "Jane",
		Notes:         "bring water",
	}
}

func TestEventRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewEventRepo(tx)
	ctx := context.Background()
	mountainID := insertMountain(t, tx, "Mount Washington")

	input := eventFixture(mountainID)
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, mountainID, got.MountainID)
	assert.Contains(t, got.MountainName, "Mount Washington")
	assert.True(t, got.StartDate.Equal(input.StartDate), "StartDate mismatch")
	require.NotNil(t, got.ArriveTime)
	assert.Equal(t, *input.ArriveTime, *got.ArriveTime)
	require.NotNil(t, got.HikeTime)
	assert.Equal(t, *input.HikeTime, *got.HikeTime)
	assert.InDelta(t, 6.2, got.DistanceMiles, 1e-9)
	assert.Equal(t, domain.PaceBear, got.Pace)
	assert.True(t, got.DogFriendly)
	assert.Equal(t, input.FBLink, got.FBLink)
	assert.Equal(t, input.Organizer, got.Organizer)
	assert.Equal(t, input.Notes, got.Notes)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestEventRepo_Create_NilTimes(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewEventRepo(tx)

	input := eventFixture(insertMountain(t, tx, "Mount Tom"))
	input.ArriveTime = nil
	input.HikeTime = nil

	got, err := r.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Nil(t, got.ArriveTime)
	assert.Nil(t, got.HikeTime)
}

func TestEventRepo_Create_UnknownMountain(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewEventRepo(tx)

	_, err := r.Create(context.Background(), eventFixture(uuid.New()))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventRepo_GetByID(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewEventRepo(tx)
	ctx := context.Background()

	created, err := r.Create(ctx, eventFixture(insertMountain(t, tx, "Mount Major")))
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.MountainName, got.MountainName)
}

func TestEventRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewEventRepo(newTestTx(t))

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepo_ListPaged_FiltersAndOrder(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewEventRepo(tx)
	ctx := context.Background()
	mountainID := insertMountain(t, tx, "Cannon Mountain")

	early := eventFixture(mountainID)
	early.StartDate = time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	early.DistanceMiles = 4
	early.Pace = domain.PaceTurtle

	late := eventFixture(mountainID)
	late.StartDate = time.Date(2030, 9, 1, 0, 0, 0, 0, time.UTC)
	late.DistanceMiles = 11
	late.DogFriendly = false

	for _, e := range []domain.Event{late, early} {
		_, err := r.Create(ctx, e)
		require.NoError(t, err)
	}

	all, total, err := r.ListPaged(ctx, domain.EventFilter{MountainID: &mountainID}, domain.NewPaginationParams(nil, nil))
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, all, 2)
	assert.True(t, all[0].StartDate.Before(all[1].StartDate), "ordered by start date")

	maxMiles := 5.0
	short, total, err := r.ListPaged(ctx, domain.EventFilter{MountainID: &mountainID, MaxMiles: &maxMiles}, domain.NewPaginationParams(nil, nil))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, short, 1)
	assert.Equal(t, domain.PaceTurtle, short[0].Pace)

	noDogs := false
	dogless, _, err := r.ListPaged(ctx, domain.EventFilter{MountainID: &mountainID, DogFriendly: &noDogs}, domain.NewPaginationParams(nil, nil))
	require.NoError(t, err)
	require.Len(t, dogless, 1)
	assert.InDelta(t, 11, dogless[0].DistanceMiles, 1e-9)

	pace := domain.PaceTurtle
	day := early.StartDate
	exact, _, err := r.ListPaged(ctx, domain.EventFilter{MountainID: &mountainID, Pace: &pace, StartDate: &day}, domain.NewPaginationParams(nil, nil))
	require.NoError(t, err)
	assert.Len(t, exact, 1)

	from := time.Date(2030, 7, 1, 0, 0, 0, 0, time.UTC)
	upcoming, err := r.List(ctx, domain.EventFilter{MountainID: &mountainID, From: &from})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.True(t, upcoming[0].StartDate.Equal(late.StartDate))
}

func TestEventRepo_ListPaged_Pagination(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewEventRepo(tx)
	ctx := context.Background()
	mountainID := insertMountain(t, tx, "Mount Kearsarge")

	for i := 0; i < 3; i++ {
		e := eventFixture(mountainID)
		e.StartDate = e.StartDate.AddDate(0, 0, i)
		_, err := r.Create(ctx, e)
		require.NoError(t, err)
	}

	page, limit := 2, 2
	got, total, err := r.ListPaged(ctx, domain.EventFilter{MountainID: &mountainID}, domain.NewPaginationParams(&page, &limit))

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, got, 1)
}

func TestEventRepo_Delete(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewEventRepo(tx)
	ctx := context.Background()

	created, err := r.Create(ctx, eventFixture(insertMountain(t, tx, "Welch Mountain")))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "event should be gone after delete")
}

func TestEventRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewEventRepo(newTestTx(t))

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
