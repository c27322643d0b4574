package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/hikingbuddies/listings/internal/domain"
)

// Event is the JSON form of domain.Event. Times render as "HH:MM" and are
// omitted when the organizer did not give them.
type Event struct {
	ID            openapi_types.UUID `json:"id"`
	MountainID    openapi_types.UUID `json:"mountain_id"`
	Mountain      string             `json:"mountain"`
	StartDate     openapi_types.Date `json:"start_date"`
	ArriveTime    *domain.TimeOfDay  `json:"arrive_time,omitempty"`
	HikeTime      *domain.TimeOfDay  `json:"hike_time,omitempty"`
	Trailhead     string             `json:"trailhead"`
	DistanceMiles float64            `json:"distance_miles"`
	Pace          domain.Pace        `json:"pace"`
	DogFriendly   bool               `json:"dog_friendly"`
	FBLink        string             `json:"fb_link"`
	Organizer     string             `json:"organizer"`
	Notes         string             `json:"notes"`
	CreatedAt     time.Time          `json:"created_at"`
}

// Pagination describes which slice of the listing a response holds.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// EventList is the body of GET /events.
type EventList struct {
	Data       []Event    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CreateEventRequest is the structured creation form. Values are sent as
// the person typed them and normalized by the service.
type CreateEventRequest struct {
	MountainID    string `json:"mountain_id"`
	StartDate     string `json:"start_date"`
	ArriveTime    string `json:"arrive_time"`
	HikeTime      string `json:"hike_time"`
	Trailhead     string `json:"trailhead"`
	DistanceMiles string `json:"distance_miles"`
	Pace          string `json:"pace"`
	DogFriendly   string `json:"dog_friendly"`
	FBLink        string `json:"fb_link"`
	Organizer     string `json:"organizer"`
	Notes         string `json:"notes"`
}

// ListEvents handles GET /events.
// Supports the filter parameters plus ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListEvents(w http.ResponseWriter, r *http.Request) {
	params, err := bindListEventsParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	filter, err := params.toFilter()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	page := domain.NewPaginationParams(params.Page, params.Limit)
	res, err := s.events.List(r.Context(), filter, page)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	data := make([]Event, len(res.Items))
	for i, e := range res.Items {
		data[i] = eventToResponse(e)
	}
	writeJSON(w, http.StatusOK, EventList{
		Data:       data,
		Pagination: Pagination{Page: page.Page, Limit: page.Limit, Total: res.Total},
	})
}

// GetEvent handles GET /events/{id}.
func (s *Server) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	e, err := s.events.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, eventToResponse(e))
}

// CreateEvent handles POST /events.
func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var body CreateEventRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	in, err := requestToInput(body)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", err.Error()))
		return
	}

	created, err := s.events.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	w.Header().Set("Location", "/events/"+created.ID.String())
	writeJSON(w, http.StatusCreated, eventToResponse(created))
}

// DeleteEvent handles DELETE /events/{id}.
func (s *Server) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	if err := s.events.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "event not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// requestToInput maps the request body onto domain.EventInput. A blank
// mountain_id is passed on as uuid.Nil so the service reports it missing.
func requestToInput(b CreateEventRequest) (domain.EventInput, error) {
	var mountainID uuid.UUID
	if raw := strings.TrimSpace(b.MountainID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.EventInput{}, errMountainID
		}
		mountainID = id
	}
	return domain.EventInput{
		MountainID:    mountainID,
		StartDate:     b.StartDate,
		ArriveTime:    b.ArriveTime,
		HikeTime:      b.HikeTime,
		Trailhead:     b.Trailhead,
		DistanceMiles: b.DistanceMiles,
		Pace:          b.Pace,
		DogFriendly:   b.DogFriendly,
		FBLink:        b.FBLink,
		Organizer:     b.Organizer,
		Notes:         b.Notes,
	}, nil
}

func eventToResponse(e domain.Event) Event {
	return Event{
		ID:            e.ID,
		MountainID:    e.MountainID,
		Mountain:      e.MountainName,
		StartDate:     openapi_types.Date{Time: e.StartDate},
		ArriveTime:    e.ArriveTime,
		HikeTime:      e.HikeTime,
		Trailhead:     e.Trailhead,
		DistanceMiles: e.DistanceMiles,
		Pace:          e.Pace,
		DogFriendly:   e.DogFriendly,
		FBLink:        e.FBLink,
		Organizer:     e.Organizer,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
	}
}
