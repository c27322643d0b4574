package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/hikingbuddies/listings/internal/domain"
	"github.com/hikingbuddies/listings/internal/repo"
)

// mockEventRepo is a hand-written test double for repo.EventRepo.
// Each method is a function field; set only the ones your test needs.
type mockEventRepo struct {
	create    func(ctx context.Context, e domain.Event) (domain.Event, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Event, error)
	listPaged func(ctx context.Context, f domain.EventFilter, p domain.PaginationParams) ([]domain.Event, int64, error)
	list      func(ctx context.Context, f domain.EventFilter) ([]domain.Event, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockEventRepo) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	return m.create(ctx, e)
}
func (m *mockEventRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	return m.getByID(ctx, id)
}
func (m *mockEventRepo) ListPaged(ctx context.Context, f domain.EventFilter, p domain.PaginationParams) ([]domain.Event, int64, error) {
	return m.listPaged(ctx, f, p)
}
func (m *mockEventRepo) List(ctx context.Context, f domain.EventFilter) ([]domain.Event, error) {
	return m.list(ctx, f)
}
func (m *mockEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// mockMountainRepo is a hand-written test double for repo.MountainRepo.
type mockMountainRepo struct {
	list        func(ctx context.Context) ([]domain.Mountain, error)
	getByID     func(ctx context.Context, id uuid.UUID) (domain.Mountain, error)
	getByName   func(ctx context.Context, name string) (domain.Mountain, error)
	seedIfEmpty func(ctx context.Context, names []string) (int64, error)
}

func (m *mockMountainRepo) List(ctx context.Context) ([]domain.Mountain, error) {
	return m.list(ctx)
}
func (m *mockMountainRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Mountain, error) {
	return m.getByID(ctx, id)
}
func (m *mockMountainRepo) GetByName(ctx context.Context, name string) (domain.Mountain, error) {
	return m.getByName(ctx, name)
}
func (m *mockMountainRepo) SeedIfEmpty(ctx context.Context, names []string) (int64, error) {
	return m.seedIfEmpty(ctx, names)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.EventRepo    = (*mockEventRepo)(nil)
	_ repo.MountainRepo = (*mockMountainRepo)(nil)
)

// knownMountains answers GetByID for any ID with a fixed mountain.
func knownMountains() *mockMountainRepo {
	return &mockMountainRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Mountain, error) {
			return domain.Mountain{ID: id, Name: "Mount Washington"}, nil
		},
	}
}

// echoEvents is a repo that echoes whatever it receives back, for
// Create tests that only care about normalization.
func echoEvents() *mockEventRepo {
	return &mockEventRepo{
		create: func(_ context.Context, e domain.Event) (domain.Event, error) { return e, nil },
	}
}
