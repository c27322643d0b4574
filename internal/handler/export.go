package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/hikingbuddies/listings/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"event_id", "mountain", "start_date", "arrive_time", "hike_time",
	"trailhead", "distance_miles", "pace", "dog_friendly", "fb_link",
	"organizer", "notes",
}

// ExportRow is the JSON form of domain.ExportRow.
type ExportRow struct {
	EventID       string `json:"event_id"`
	Mountain      string `json:"mountain"`
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

// ExportEvents handles GET /events/export.
// It accepts the same filters as GET /events but is not paginated.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) ExportEvents(w http.ResponseWriter, r *http.Request) {
	params, err := bindExportEventsParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	format := "json"
	if params.Format != nil {
		format = *params.Format
	}
	if format != "json" && format != "csv" {
		writeJSON(w, http.StatusBadRequest, requestBody("format must be csv or json"))
		return
	}
	filter, err := params.toFilter()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	rows, err := s.export.Export(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	if format == "csv" {
		writeCSV(w, rows)
		return
	}
	out := make([]ExportRow, len(rows))
	for i, row := range rows {
		out[i] = ExportRow(row)
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV encodes rows behind a header line and sends them as a download.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(rowToRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="events.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// rowToRecord lays out a row in csvHeaders order.
func rowToRecord(r domain.ExportRow) []string {
	return []string{
		r.EventID,
		r.Mountain,
		r.StartDate,
		r.ArriveTime,
		r.HikeTime,
		r.Trailhead,
		r.DistanceMiles,
		r.Pace,
		r.DogFriendly,
		r.FBLink,
		r.Organizer,
		r.Notes,
	}
}
