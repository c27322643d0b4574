package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/hikingbuddies/listings/internal/domain"
	"github.com/hikingbuddies/listings/internal/repo"
)

// MountainService serves the mountain reference list.
type MountainService struct {
	repo repo.MountainRepo
}

// NewMountainService constructs a MountainService backed by the provided MountainRepo.
func NewMountainService(r repo.MountainRepo) *MountainService {
	return &MountainService{repo: r}
}

// List returns all mountains ordered by name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *MountainService) List(ctx context.Context) ([]domain.Mountain, error) {
	mountains, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.MountainService.List: %w", err)
	}
	if mountains == nil {
		return []domain.Mountain{}, nil
	}
	return mountains, nil
}

// GetByID returns a single mountain by ID.
func (s *MountainService) GetByID(ctx context.Context, id uuid.UUID) (domain.Mountain, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Mountain{}, fmt.Errorf("service.MountainService.GetByID: %w", err)
	}
	return m, nil
}

// ResolveName finds the mountain whose name equals name, ignoring case and
// surrounding whitespace. Returns domain.ErrNotFound when there is none.
func (s *MountainService) ResolveName(ctx context.Context, name string) (domain.Mountain, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Mountain{}, fmt.Errorf("service.MountainService.ResolveName: %w", domain.ErrNotFound)
	}
	m, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return domain.Mountain{}, fmt.Errorf("service.MountainService.ResolveName: %w", err)
	}
	return m, nil
}

// Seed loads names into an empty mountains table and reports how many were
// inserted. Names are trimmed, de-duplicated and sorted first. Once the
// table holds anything, Seed does nothing.
func (s *MountainService) Seed(ctx context.Context, names []string) (int64, error) {
	seen := make(map[string]bool, len(names))
	clean := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		key := strings.ToLower(n)
		if n == "" || seen[key] {
			continue
		}
		seen[key] = true
		clean = append(clean, n)
	}
	if len(clean) == 0 {
		return 0, nil
	}
	sort.Strings(clean)

	n, err := s.repo.SeedIfEmpty(ctx, clean)
	if err != nil {
		return 0, fmt.Errorf("service.MountainService.Seed: %w", err)
	}
	return n, nil
}

// isNotFound is a small readability helper for errors.Is(err, domain.ErrNotFound).
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
