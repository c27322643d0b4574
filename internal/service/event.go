// Package service contains the business logic for the Hiking Buddies API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/hikingbuddies/listings/internal/domain"
	"github.com/hikingbuddies/listings/internal/parse"
	"github.com/hikingbuddies/listings/internal/repo"
)

// EventService implements business logic for Event operations.
// It holds the mountains repo because creating an event requires verifying
// the mountain exists.
type EventService struct {
	events    repo.EventRepo
	mountains repo.MountainRepo
}

// NewEventService constructs an EventService backed by the provided repos.
func NewEventService(events repo.EventRepo, mountains repo.MountainRepo) *EventService {
	return &EventService{events: events, mountains: mountains}
}

// Create normalizes a submitted creation form and persists the event.
// Returns domain.ErrValidation if any field is missing or malformed,
// including a mountain that does not exist.
func (s *EventService) Create(ctx context.Context, in domain.EventInput) (domain.Event, error) {
	event, err := normalizeEvent(in)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Create: %w", err)
	}

	if _, err := s.mountains.GetByID(ctx, event.MountainID); err != nil {
		if isNotFound(err) {
			return domain.Event{}, fmt.Errorf("service.EventService.Create: %w: unknown mountain", domain.ErrValidation)
		}
		return domain.Event{}, fmt.Errorf("service.EventService.Create: %w", err)
	}

	result, err := s.events.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single event by ID.
func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	result, err := s.events.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of events matching f, soonest first.
// Items is never nil.
func (s *EventService) List(ctx context.Context, f domain.EventFilter, p domain.PaginationParams) (domain.Page[domain.Event], error) {
	events, total, err := s.events.ListPaged(ctx, f, p)
	if err != nil {
		return domain.Page[domain.Event]{}, fmt.Errorf("service.EventService.List: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return domain.Page[domain.Event]{Items: events, Total: total}, nil
}

// Delete removes an event by ID.
// Returns domain.ErrNotFound if the event does not exist.
func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.EventService.Delete: %w", err)
	}
	return nil
}

// normalizeEvent turns the submitted text fields into a typed event.
// Dates, times, dog answers and pace tiers go through the same extractors
// the free-text parser uses, so both paths accept the same spellings.
func normalizeEvent(in domain.EventInput) (domain.Event, error) {
	if in.MountainID == uuid.Nil {
		return domain.Event{}, fmt.Errorf("%w: mountain is required", domain.ErrValidation)
	}

	start, ok := parse.Date(in.StartDate)
	if !ok {
		return domain.Event{}, fmt.Errorf("%w: invalid start date, use YYYY-MM-DD", domain.ErrValidation)
	}

	dog, ok := parse.Dog(in.DogFriendly)
	if !ok {
		return domain.Event{}, fmt.Errorf("%w: dog friendly must be yes or no", domain.ErrValidation)
	}

	miles, err := strconv.ParseFloat(strings.TrimSpace(in.DistanceMiles), 64)
	if err != nil || math.IsNaN(miles) || math.IsInf(miles, 0) {
		return domain.Event{}, fmt.Errorf("%w: distance must be a number", domain.ErrValidation)
	}
	if miles < 0 {
		return domain.Event{}, fmt.Errorf("%w: distance must not be negative", domain.ErrValidation)
	}

	pace, ok := parse.Pace(in.Pace)
	if !ok {
		return domain.Event{}, fmt.Errorf("%w: pace must be one of Turtle, Bear, Moose, GOAT", domain.ErrValidation)
	}

	arrive, err := optionalClock("arrive time", in.ArriveTime)
	if err != nil {
		return domain.Event{}, err
	}
	hike, err := optionalClock("hike time", in.HikeTime)
	if err != nil {
		return domain.Event{}, err
	}

	link := strings.TrimSpace(in.FBLink)
	if link == "" {
		return domain.Event{}, fmt.Errorf("%w: fb link is required", domain.ErrValidation)
	}

	return domain.Event{
		MountainID:    in.MountainID,
		StartDate:     start,
		ArriveTime:    arrive,
		HikeTime:      hike,
		Trailhead:     strings.TrimSpace(in.Trailhead),
		DistanceMiles: miles,
		Pace:          pace,
		DogFriendly:   dog,
		FBLink:        link,
		Organizer:     strings.TrimSpace(in.Organizer),
		Notes:         strings.TrimSpace(in.Notes),
	}, nil
}

// optionalClock parses s when it is non-blank. Blank means "not given".
func optionalClock(name, s string) (*domain.TimeOfDay, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, ok := parse.Clock(s)
	if !ok {
		return nil, fmt.Errorf("%w: %s must look like 07:30 or 7:30am", domain.ErrValidation, name)
	}
	return &t, nil
}
