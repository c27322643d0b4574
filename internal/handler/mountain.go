package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/hikingbuddies/listings/internal/domain"
)

// Mountain is the JSON form of domain.Mountain.
type Mountain struct {
	ID   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

// ListMountains handles GET /mountains.
func (s *Server) ListMountains(w http.ResponseWriter, r *http.Request) {
	mountains, err := s.mountains.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	out := make([]Mountain, len(mountains))
	for i, m := range mountains {
		out[i] = Mountain{ID: m.ID, Name: m.Name}
	}
	writeJSON(w, http.StatusOK, out)
}

// ListPaces handles GET /paces. Tiers come back slowest first.
func (s *Server) ListPaces(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Paces())
}
