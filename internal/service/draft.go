package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hikingbuddies/listings/internal/parse"
	"github.com/hikingbuddies/listings/internal/repo"
)

// Draft is a parsed free-text block ready to pre-fill the creation form.
type Draft struct {
	// Raw is the submitted text, echoed back so it can be corrected and resent.
	Raw    string
	Result parse.Result
	// MountainID is set when the parsed mountain name matches a known mountain.
	MountainID *uuid.UUID
}

// DraftService parses free-text event descriptions.
type DraftService struct {
	mountains *MountainService
}

// NewDraftService constructs a DraftService that resolves mountain names
// through the provided repo.
func NewDraftService(mountains repo.MountainRepo) *DraftService {
	return &DraftService{mountains: NewMountainService(mountains)}
}

// Parse extracts what it can from raw. An unknown or missing mountain name
// only leaves MountainID nil; the returned error is reserved for a failed
// lookup.
func (s *DraftService) Parse(ctx context.Context, raw string) (Draft, error) {
	d := Draft{Raw: raw, Result: parse.Block(raw)}

	name, ok := d.Result.Fields.String(parse.FieldMountain)
	if !ok {
		return d, nil
	}

	m, err := s.mountains.ResolveName(ctx, name)
	switch {
	case err == nil:
		d.MountainID = &m.ID
	case !isNotFound(err):
		return Draft{}, fmt.Errorf("service.DraftService.Parse: %w", err)
	}
	return d, nil
}
