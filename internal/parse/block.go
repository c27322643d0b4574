package parse

import "strings"

type extractor func(string) (any, bool)

// rule routes a line to a field when its lower-cased key starts with any of
// prefixes.
type rule struct {
	prefixes []string
	field    Field
	extract  extractor
}

// rules is evaluated top to bottom and the first match wins. Order matters
// where prefixes overlap: "start time" must be tried before "start".
var rules = []rule{
	{[]string{"organizer"}, FieldOrganizer, lift(verbatim)},
	{[]string{"mountain"}, FieldMountain, lift(verbatim)},
	{[]string{"arrive", "arrival", "meet", "meetup"}, FieldArriveTime, lift(Clock)},
	{[]string{"hike", "start time", "begin"}, FieldHikeTime, lift(Clock)},
	{[]string{"start"}, FieldStartDate, lift(Date)},
	{[]string{"trailhead"}, FieldTrailhead, lift(verbatim)},
	{[]string{"distance"}, FieldDistanceMiles, lift(Distance)},
	{[]string{"pace"}, FieldPace, lift(Pace)},
	{[]string{"dog"}, FieldDogFriendly, lift(Dog)},
	{[]string{"fb"}, FieldFBLink, lift(FirstToken)},
	{[]string{"notes"}, FieldNotes, lift(verbatim)},
}

// lift adapts a typed extractor to the rule table.
func lift[T any](fn func(string) (T, bool)) extractor {
	return func(s string) (any, bool) {
		v, ok := fn(s)
		if !ok {
			return nil, false
		}
		return v, true
	}
}

func verbatim(s string) (string, bool) { return s, true }

// Classify returns the field a line key feeds, matching case-insensitively
// on the start of the key.
func Classify(key string) (Field, bool) {
	r, ok := match(strings.ToLower(strings.TrimSpace(key)))
	if !ok {
		return "", false
	}
	return r.field, true
}

func match(key string) (rule, bool) {
	for _, r := range rules {
		for _, p := range r.prefixes {
			if strings.HasPrefix(key, p) {
				return r, true
			}
		}
	}
	return rule{}, false
}

// Block extracts event fields from a multi-line "Key: value" description.
//
// Lines without a colon and lines whose key is not recognized are skipped.
// A line is split on its first colon only, so values such as URLs and
// clock times keep theirs. Keys are matched case-insensitively; values keep
// their casing. When a field appears more than once the last line decides:
// a readable value replaces the earlier one and an unreadable one clears it.
//
// Block never fails. Anything it cannot use is left out of the result so the
// person reviewing the pre-filled form sees which fields still need input.
func Block(raw string) Result {
	res := Result{Fields: Fields{}, Errors: FieldErrors{}}

	for _, line := range splitLines(raw) {
		key, val, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		r, ok := match(strings.ToLower(strings.TrimSpace(key)))
		if !ok {
			continue
		}
		if v, ok := r.extract(strings.TrimSpace(val)); ok {
			res.Fields[r.field] = v
		} else {
			delete(res.Fields, r.field)
		}
	}

	return res
}

// lineBreaks folds every line boundary into "\n". Besides CR and LF this
// covers the vertical tab, form feed, the ASCII file/group/record separators,
// NEL and the Unicode line and paragraph separators, which text copied out
// of web pages often carries.
var lineBreaks = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\v", "\n",
	"\f", "\n",
	"\x1c", "\n",
	"\x1d", "\n",
	"\x1e", "\n",
	"\u0085", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

func splitLines(s string) []string {
	return strings.Split(lineBreaks.Replace(s), "\n")
}
