package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mountain is a named summit that events are organized around.
// The list is reference data: it is seeded once and only read afterwards.
type Mountain struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
