package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hikingbuddies/listings/internal/domain"
	"github.com/hikingbuddies/listings/internal/handler"
	"github.com/hikingbuddies/listings/internal/service"
)

// mockEventServicer is a test double for handler.EventServicer.
// Set only the method fields your test needs.
type mockEventServicer struct {
	create  func(ctx context.Context, in domain.EventInput) (domain.Event, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Event, error)
	list    func(ctx context.Context, f domain.EventFilter, p domain.PaginationParams) (domain.Page[domain.Event], error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockEventServicer) Create(ctx context.Context, in domain.EventInput) (domain.Event, error) {
	return m.create(ctx, in)
}
func (m *mockEventServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	return m.getByID(ctx, id)
}
func (m *mockEventServicer) List(ctx context.Context, f domain.EventFilter, p domain.PaginationParams) (domain.Page[domain.Event], error) {
	return m.list(ctx, f, p)
}
func (m *mockEventServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockMountainServicer struct {
	list func(ctx context.Context) ([]domain.Mountain, error)
}

func (m *mockMountainServicer) List(ctx context.Context) ([]domain.Mountain, error) {
	return m.list(ctx)
}

type mockDraftServicer struct {
	parse func(ctx context.Context, raw string) (service.Draft, error)
}

func (m *mockDraftServicer) Parse(ctx context.Context, raw string) (service.Draft, error) {
	return m.parse(ctx, raw)
}

type mockExportServicer struct {
	export func(ctx context.Context, f domain.EventFilter) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context, f domain.EventFilter) ([]domain.ExportRow, error) {
	return m.export(ctx, f)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.EventServicer    = (*mockEventServicer)(nil)
	_ handler.MountainServicer = (*mockMountainServicer)(nil)
	_ handler.DraftServicer    = (*mockDraftServicer)(nil)
	_ handler.ExportServicer   = (*mockExportServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// deps groups the mocks a test wires into the router. Nil members stay nil.
type deps struct {
	events    *mockEventServicer
	mountains *mockMountainServicer
	drafts    *mockDraftServicer
	export    *mockExportServicer
	gate      func(http.Handler) http.Handler
}

// newRouter wires a Server with the given mocks the same way main.go does.
// Typed nil pointers are replaced by untyped nils so a missing dependency
// panics loudly instead of calling a nil func field.
func newRouter(d deps) http.Handler {
	var (
		events    handler.EventServicer
		mountains handler.MountainServicer
		drafts    handler.DraftServicer
		export    handler.ExportServicer
	)
	if d.events != nil {
		events = d.events
	}
	if d.mountains != nil {
		mountains = d.mountains
	}
	if d.drafts != nil {
		drafts = d.drafts
	}
	if d.export != nil {
		export = d.export
	}
	return handler.NewServer(events, mountains, drafts, export).Routes(d.gate)
}

func do(h http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func eventFixture() domain.Event {
	hike := domain.TimeOfDay{Hour: 7, Minute: 30}
	return domain.Event{
		ID:            uuid.New(),
		MountainID:    uuid.New(),
		MountainName:  "Mount Washington",
		StartDate:     time.Date(2030, 10, 12, 0, 0, 0, 0, time.UTC),
		HikeTime:      &hike,
		Trailhead:     "Pinkham Notch",
		DistanceMiles: 8.4,
		Pace:          domain.PaceBear,
		DogFriendly:   true,
		FBLink:        "https://fb.me/e/1",
		Organizer:     "Alex",
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
}
