package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/hikingbuddies/listings/internal/domain"
)

// EventFilterParams are the query parameters shared by GET /events and
// GET /events/export.
type EventFilterParams struct {
	MountainID  *openapi_types.UUID
	Pace        *string
	MaxMiles    *float64
	StartDate   *openapi_types.Date
	From        *openapi_types.Date
	DogFriendly *string
}

// ListEventsParams adds pagination to EventFilterParams.
type ListEventsParams struct {
	EventFilterParams
	Page  *int
	Limit *int
}

// ExportEventsParams adds the output format to EventFilterParams.
type ExportEventsParams struct {
	EventFilterParams
	Format *string
}

// queryValues returns the request query with blank values removed. Filter
// forms submit every input, so an empty value means "no filter".
func queryValues(r *http.Request) url.Values {
	q := r.URL.Query()
	for k, vs := range q {
		kept := vs[:0]
		for _, v := range vs {
			if v = strings.TrimSpace(v); v != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			delete(q, k)
			continue
		}
		q[k] = kept
	}
	return q
}

func bindParam(q url.Values, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, q, dest); err != nil {
		return fmt.Errorf("invalid format for parameter %s", name)
	}
	return nil
}

func bindFilterParams(q url.Values) (EventFilterParams, error) {
	var p EventFilterParams
	for _, b := range []struct {
		name string
		dest any
	}{
		{"mountain_id", &p.MountainID},
		{"pace", &p.Pace},
		{"max_miles", &p.MaxMiles},
		{"start_date", &p.StartDate},
		{"from", &p.From},
		{"dog_friendly", &p.DogFriendly},
	} {
		if err := bindParam(q, b.name, b.dest); err != nil {
			return EventFilterParams{}, err
		}
	}
	return p, nil
}

func bindListEventsParams(r *http.Request) (ListEventsParams, error) {
	q := queryValues(r)
	f, err := bindFilterParams(q)
	if err != nil {
		return ListEventsParams{}, err
	}
	p := ListEventsParams{EventFilterParams: f}
	if err := bindParam(q, "page", &p.Page); err != nil {
		return ListEventsParams{}, err
	}
	if err := bindParam(q, "limit", &p.Limit); err != nil {
		return ListEventsParams{}, err
	}
	return p, nil
}

func bindExportEventsParams(r *http.Request) (ExportEventsParams, error) {
	q := queryValues(r)
	f, err := bindFilterParams(q)
	if err != nil {
		return ExportEventsParams{}, err
	}
	p := ExportEventsParams{EventFilterParams: f}
	if err := bindParam(q, "format", &p.Format); err != nil {
		return ExportEventsParams{}, err
	}
	return p, nil
}

// toFilter converts bound parameters into a domain.EventFilter.
// A pace is matched case-insensitively against the known tiers; an unknown
// one is kept as given and simply matches nothing. dog_friendly filters only
// on exactly "Yes" or "No".
func (p EventFilterParams) toFilter() (domain.EventFilter, error) {
	var f domain.EventFilter
	if p.MountainID != nil {
		id := *p.MountainID
		f.MountainID = &id
	}
	if p.Pace != nil {
		pace, ok := domain.LookupPace(*p.Pace)
		if !ok {
			pace = domain.Pace(*p.Pace)
		}
		f.Pace = &pace
	}
	if p.MaxMiles != nil {
		if math.IsNaN(*p.MaxMiles) || math.IsInf(*p.MaxMiles, 0) {
			return domain.EventFilter{}, errors.New("max_miles must be a number")
		}
		f.MaxMiles = p.MaxMiles
	}
	if p.StartDate != nil {
		d := p.StartDate.Time
		f.StartDate = &d
	}
	if p.From != nil {
		d := p.From.Time
		f.From = &d
	}
	if p.DogFriendly != nil {
		switch *p.DogFriendly {
		case "Yes":
			v := true
			f.DogFriendly = &v
		case "No":
			v := false
			f.DogFriendly = &v
		}
	}
	return f, nil
}
