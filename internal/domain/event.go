// Package domain contains the core data types for the Hiking Buddies listings.
// It depends only on uuid and the standard library and is imported by every
// other internal package (parse, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a single organized hike on one mountain.
// ArriveTime and HikeTime are nil when the organizer did not give them.
type Event struct {
	ID            uuid.UUID
	MountainID    uuid.UUID
	MountainName  string // filled on reads from the mountains join
	StartDate     time.Time
	ArriveTime    *TimeOfDay
	HikeTime      *TimeOfDay
	Trailhead     string
	DistanceMiles float64
	Pace          Pace
	DogFriendly   bool
	FBLink        string
	Organizer     string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EventInput is the structured creation form exactly as submitted.
// Every value except MountainID is raw text; the service normalizes it.
type EventInput struct {
	MountainID    uuid.UUID
	StartDate     string
	ArriveTime    string
	HikeTime      string
	Trailhead     string
	DistanceMiles string
	Pace          string
	DogFriendly   string
	FBLink        string
	Organizer     string
	Notes         string
}

// EventFilter narrows an event listing. Nil fields do not filter.
type EventFilter struct {
	MountainID  *uuid.UUID
	Pace        *Pace
	MaxMiles    *float64
	StartDate   *time.Time // exact day
	From        *time.Time // on or after this day
	DogFriendly *bool
}
