package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hikingbuddies/listings/internal/domain"
	"github.com/hikingbuddies/listings/internal/parse"
	"github.com/hikingbuddies/listings/internal/repo"
)

// ExportService assembles a flat export of every event matching a filter.
type ExportService struct {
	events repo.EventRepo
}

// NewExportService constructs an ExportService backed by the provided EventRepo.
func NewExportService(events repo.EventRepo) *ExportService {
	return &ExportService{events: events}
}

// Export returns one ExportRow per matching event, in listing order.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context, f domain.EventFilter) ([]domain.ExportRow, error) {
	events, err := s.events.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, eventToRow(e))
	}
	return rows, nil
}

func eventToRow(e domain.Event) domain.ExportRow {
	dog := "No"
	if e.DogFriendly {
		dog = "Yes"
	}
	return domain.ExportRow{
		EventID:       e.ID.String(),
		Mountain:      e.MountainName,
		StartDate:     e.StartDate.Format(parse.DateLayout),
		ArriveTime:    clockString(e.ArriveTime),
		HikeTime:      clockString(e.HikeTime),
		Trailhead:     e.Trailhead,
		DistanceMiles: strconv.FormatFloat(e.DistanceMiles, 'f', -1, 64),
		Pace:          e.Pace.String(),
		DogFriendly:   dog,
		FBLink:        e.FBLink,
		Organizer:     e.Organizer,
		Notes:         e.Notes,
	}
}

func clockString(t *domain.TimeOfDay) string {
	if t == nil {
		return ""
	}
	return t.String()
}
