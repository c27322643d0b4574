package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikingbuddies/listings/internal/domain"
	"github.com/hikingbuddies/listings/internal/service"
)

func TestExportService_Export_FormatsRows(t *testing.T) {
	arrive := domain.TimeOfDay{Hour: 6, Minute: 45}
	full := domain.Event{
		ID:            uuid.New(),
		MountainName:  "Mount Moosilauke",
		StartDate:     time.Date(2030, 10, 12, 0, 0, 0, 0, time.UTC),
		ArriveTime:    &arrive,
		DistanceMiles: 7.5,
		Pace:          domain.PaceMoose,
		DogFriendly:   true,
		FBLink:        "https://fb.me/e/2",
		Organizer:     "Sam",
	}
	bare := domain.Event{
		ID:            uuid.New(),
		MountainName:  "Mount Major",
		StartDate:     time.Date(2030, 10, 13, 0, 0, 0, 0, time.UTC),
		DistanceMiles: 3,
		Pace:          domain.PaceTurtle,
		FBLink:        "https://fb.me/e/3",
	}

	var gotFilter domain.EventFilter
	events := &mockEventRepo{
		list: func(_ context.Context, f domain.EventFilter) ([]domain.Event, error) {
			gotFilter = f
			return []domain.Event{full, bare}, nil
		},
	}
	svc := service.NewExportService(events)

	pace := domain.PaceMoose
	rows, err := svc.Export(context.Background(), domain.EventFilter{Pace: &pace})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, gotFilter.Pace)

	assert.Equal(t, full.ID.String(), rows[0].EventID)
	assert.Equal(t, "Mount Moosilauke", rows[0].Mountain)
	assert.Equal(t, "2030-10-12", rows[0].StartDate)
	assert.Equal(t, "06:45", rows[0].ArriveTime)
	assert.Empty(t, rows[0].HikeTime)
	assert.Equal(t, "7.5", rows[0].DistanceMiles)
	assert.Equal(t, "Moose", rows[0].Pace)
	assert.Equal(t, "Yes", rows[0].DogFriendly)

	assert.Equal(t, "3", rows[1].DistanceMiles)
	assert.Equal(t, "No", rows[1].DogFriendly)
	assert.Empty(t, rows[1].ArriveTime)
}

func TestExportService_Export_Empty(t *testing.T) {
	events := &mockEventRepo{
		list: func(_ context.Context, _ domain.EventFilter) ([]domain.Event, error) { return nil, nil },
	}

	rows, err := service.NewExportService(events).Export(context.Background(), domain.EventFilter{})

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExportService_Export_RepoError(t *testing.T) {
	repoErr := errors.New("timeout")
	events := &mockEventRepo{
		list: func(_ context.Context, _ domain.EventFilter) ([]domain.Event, error) { return nil, repoErr },
	}

	_, err := service.NewExportService(events).Export(context.Background(), domain.EventFilter{})

	assert.ErrorIs(t, err, repoErr)
}
