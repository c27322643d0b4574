// Package handler implements the HTTP handlers for the listings API.
// All handlers are methods on Server; Routes mounts them on a chi router.
// Methods are split into resource files (health.go, event.go, etc.) but
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hikingbuddies/listings/internal/domain"
	"github.com/hikingbuddies/listings/internal/service"
)

// EventServicer defines the event operations the handlers depend on.
// Interfaces live here, with their consumer, so tests can inject mocks
// without touching the database or service layer.
type EventServicer interface {
	Create(ctx context.Context, in domain.EventInput) (domain.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error)
	List(ctx context.Context, f domain.EventFilter, p domain.PaginationParams) (domain.Page[domain.Event], error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MountainServicer defines the mountain operations the handlers depend on.
type MountainServicer interface {
	List(ctx context.Context) ([]domain.Mountain, error)
}

// DraftServicer turns a free-text block into a creation draft.
type DraftServicer interface {
	Parse(ctx context.Context, raw string) (service.Draft, error)
}

// ExportServicer defines the export operation the handlers depend on.
type ExportServicer interface {
	Export(ctx context.Context, f domain.EventFilter) ([]domain.ExportRow, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	events    EventServicer
	mountains MountainServicer
	drafts    DraftServicer
	export    ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(events EventServicer, mountains MountainServicer, drafts DraftServicer, export ExportServicer) *Server {
	return &Server{events: events, mountains: mountains, drafts: drafts, export: export}
}

// Routes returns a router serving the whole API. gate wraps the routes that
// create or delete events; nil leaves them open.
func (s *Server) Routes(gate func(http.Handler) http.Handler) chi.Router {
	if gate == nil {
		gate = func(next http.Handler) http.Handler { return next }
	}

	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/events", http.StatusFound)
	})
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/mountains", s.ListMountains)
	r.Get("/paces", s.ListPaces)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", s.ListEvents)
		r.Get("/export", s.ExportEvents)
		r.Get("/{id}", s.GetEvent)

		r.Group(func(r chi.Router) {
			r.Use(gate)
			r.Post("/", s.CreateEvent)
			r.Post("/parse", s.ParseEvent)
			r.Delete("/{id}", s.DeleteEvent)
		})
	})
	return r
}
