package domain

import "strings"

// Pace is one of the four hiking-speed tiers an event is advertised at.
type Pace string

const (
	PaceTurtle Pace = "Turtle"
	PaceBear   Pace = "Bear"
	PaceMoose  Pace = "Moose"
	PaceGOAT   Pace = "GOAT"
)

// paceSynonyms maps the lower-cased spelling of each tier to its canonical form.
var paceSynonyms = map[string]Pace{
	"turtle": PaceTurtle,
	"bear":   PaceBear,
	"moose":  PaceMoose,
	"goat":   PaceGOAT,
}

// Paces returns the tiers in display order, slowest first.
func Paces() []Pace {
	return []Pace{PaceTurtle, PaceBear, PaceMoose, PaceGOAT}
}

// LookupPace returns the canonical tier for s, ignoring case and surrounding
// whitespace. Only exact tier names match.
func LookupPace(s string) (Pace, bool) {
	p, ok := paceSynonyms[strings.ToLower(strings.TrimSpace(s))]
	return p, ok
}

// Valid reports whether p is one of the canonical tiers.
func (p Pace) Valid() bool {
	switch p {
	case PaceTurtle, PaceBear, PaceMoose, PaceGOAT:
		return true
	}
	return false
}

func (p Pace) String() string { return string(p) }
