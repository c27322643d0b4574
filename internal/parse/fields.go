package parse

import (
	"time"

	"github.com/hikingbuddies/listings/internal/domain"
)

// Field names a piece of event data the block parser can fill in.
type Field string

const (
	FieldOrganizer     Field = "organizer"
	FieldMountain      Field = "mountain"
	FieldStartDate     Field = "start_date"
	FieldArriveTime    Field = "arrive_time"
	FieldHikeTime      Field = "hike_time"
	FieldTrailhead     Field = "trailhead"
	FieldDistanceMiles Field = "distance_miles"
	FieldPace          Field = "pace"
	FieldDogFriendly   Field = "dog_friendly"
	FieldFBLink        Field = "fb_link"
	FieldNotes         Field = "notes"
)

// Fields holds the values Block managed to extract, keyed by field name.
// A missing key means the field was either not supplied or not readable.
//
// Value types: string for organizer, mountain, trailhead, fb_link and notes;
// time.Time for start_date; domain.TimeOfDay for arrive_time and hike_time;
// float64 for distance_miles; domain.Pace for pace; bool for dog_friendly.
type Fields map[Field]any

// FieldErrors maps a field name to a message a person can act on.
// Block always returns one, even though no extractor reports errors yet.
type FieldErrors map[Field]string

// Result is the outcome of parsing one block.
type Result struct {
	Fields Fields
	Errors FieldErrors
}

// Has reports whether f was extracted.
func (fs Fields) Has(f Field) bool {
	_, ok := fs[f]
	return ok
}

// String returns the text value of f, if f holds one.
func (fs Fields) String(f Field) (string, bool) {
	v, ok := fs[f].(string)
	return v, ok
}

// Date returns the calendar date stored under f.
func (fs Fields) Date(f Field) (time.Time, bool) {
	v, ok := fs[f].(time.Time)
	return v, ok
}

// Clock returns the time of day stored under f.
func (fs Fields) Clock(f Field) (domain.TimeOfDay, bool) {
	v, ok := fs[f].(domain.TimeOfDay)
	return v, ok
}

// Float returns the number stored under f.
func (fs Fields) Float(f Field) (float64, bool) {
	v, ok := fs[f].(float64)
	return v, ok
}

// Bool returns the yes/no answer stored under f. The second result
// reports whether there was one.
func (fs Fields) Bool(f Field) (bool, bool) {
	v, ok := fs[f].(bool)
	return v, ok
}

// Pace returns the pace tier stored under f.
func (fs Fields) Pace(f Field) (domain.Pace, bool) {
	v, ok := fs[f].(domain.Pace)
	return v, ok
}
