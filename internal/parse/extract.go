// Package parse turns a loosely formatted event description into typed fields.
//
// Each field type has its own extractor: a pure function from raw text to a
// typed value plus an ok flag. Extractors never return errors; a value they
// cannot read is simply absent. Block runs the extractors over a multi-line
// "Key: value" block and collects whatever it can.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hikingbuddies/listings/internal/domain"
)

// DateLayout is the only calendar date spelling Date accepts.
const DateLayout = "2006-01-02"

// meridiemLayout reads 12-hour times. Its hour runs from 1 to 12.
const meridiemLayout = "3:04pm"

// clockLayouts are tried in order. The bare "3:04" layout can only match
// what "15:04" already accepted, so an unmarked time is always 24-hour.
var clockLayouts = []string{"15:04", meridiemLayout, "3:04"}

var decimalRe = regexp.MustCompile(`\d+\.?\d*`)

// Date reads a fixed-width YYYY-MM-DD date. Dates that do not exist on the
// calendar (2023-02-30) are rejected. The result is midnight UTC.
func Date(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Clock reads a time of day such as "07:30", "7:30am" or "7 : 30 PM".
// All whitespace is removed before parsing and case is ignored.
func Clock(s string) (domain.TimeOfDay, bool) {
	raw := strings.ToLower(strings.Join(strings.Fields(s), ""))
	if raw == "" {
		return domain.TimeOfDay{}, false
	}
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if layout == meridiemLayout && zeroHour(raw) {
			return domain.TimeOfDay{}, false
		}
		return domain.NewTimeOfDay(t), true
	}
	return domain.TimeOfDay{}, false
}

// zeroHour reports whether the hour written before the colon is 0 or 00.
// time.Parse lets "0:30am" through, but no 12-hour clock shows hour 0.
func zeroHour(raw string) bool {
	h, _, _ := strings.Cut(raw, ":")
	return strings.Trim(h, "0") == ""
}

// Distance returns the first unsigned decimal number found in s, so
// "approx 6.2 miles" is 6.2 and "3 to 5 miles" is 3.
func Distance(s string) (float64, bool) {
	m := decimalRe.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Dog accepts exactly "yes" or "no", ignoring case and surrounding spaces.
// The first result is the answer; the second reports whether there was one.
func Dog(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return true, true
	case "no":
		return false, true
	}
	return false, false
}

// Pace maps a tier name to its canonical spelling ("goat" → GOAT).
func Pace(s string) (domain.Pace, bool) {
	return domain.LookupPace(s)
}

// FirstToken keeps the first whitespace-delimited token of s. It strips
// whatever an organizer pasted after a link.
func FirstToken(s string) (string, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
