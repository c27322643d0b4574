package domain

// ExportRow is one event in the flat export, with every value already
// rendered as text so CSV and JSON writers need no further formatting.
// Optional values that were not given are empty strings.
type ExportRow struct {
	EventID       string
	Mountain      string
	StartDate     string // "2006-01-02"
	ArriveTime    string // "15:04" or empty
	HikeTime      string // "15:04" or empty
	Trailhead     string
	DistanceMiles string
	Pace          string
	DogFriendly   string // "Yes" or "No"
	FBLink        string
	Organizer     string
	Notes         string
}
