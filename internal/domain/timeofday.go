package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time with minute precision and no date or zone.
// It maps onto a Postgres "time" column.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay takes the hour and minute of t, discarding everything else.
func NewTimeOfDay(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// String formats the time as 24-hour "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Microseconds returns the offset from midnight, as stored by pgtype.Time.
func (t TimeOfDay) Microseconds() int64 {
	return (int64(t.Hour)*3600 + int64(t.Minute)*60) * int64(time.Second/time.Microsecond)
}

// TimeOfDayFromMicroseconds is the inverse of Microseconds. Seconds are dropped.
func TimeOfDayFromMicroseconds(us int64) TimeOfDay {
	mins := us / int64(time.Minute/time.Microsecond)
	return TimeOfDay{Hour: int(mins / 60), Minute: int(mins % 60)}
}

// MarshalText encodes the time as "HH:MM" so it reads naturally in JSON and CSV.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts the "HH:MM" form produced by MarshalText.
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := time.Parse("15:04", string(b))
	if err != nil {
		return fmt.Errorf("domain.TimeOfDay: %w", err)
	}
	*t = NewTimeOfDay(parsed)
	return nil
}
