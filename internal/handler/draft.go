package handler

import (
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/hikingbuddies/listings/internal/service"
)

// ParseEventRequest is the body of POST /events/parse.
type ParseEventRequest struct {
	Raw string `json:"raw"`
}

// Draft is the body returned by POST /events/parse. Fields holds only what
// was read; dates render as "2006-01-02" and times as "HH:MM".
type Draft struct {
	Raw        string              `json:"raw"`
	Fields     map[string]any      `json:"fields"`
	Errors     map[string]string   `json:"errors"`
	MountainID *openapi_types.UUID `json:"mountain_id"`
}

// ParseEvent handles POST /events/parse.
// The draft is never saved; the client reviews it and submits POST /events.
func (s *Server) ParseEvent(w http.ResponseWriter, r *http.Request) {
	var body ParseEventRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	d, err := s.drafts.Parse(r.Context(), body.Raw)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, draftToResponse(d))
}

func draftToResponse(d service.Draft) Draft {
	fields := make(map[string]any, len(d.Result.Fields))
	for k, v := range d.Result.Fields {
		if t, ok := v.(time.Time); ok {
			v = openapi_types.Date{Time: t}
		}
		fields[string(k)] = v
	}
	errs := make(map[string]string, len(d.Result.Errors))
	for k, v := range d.Result.Errors {
		errs[string(k)] = v
	}
	return Draft{Raw: d.Raw, Fields: fields, Errors: errs, MountainID: d.MountainID}
}
