// Package seed holds the reference data loaded into a fresh database.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v3"
)

//go:embed mountains.yaml
var mountainsYAML []byte

type mountainFile struct {
	Mountains []string `yaml:"mountains"`
}

// Mountains returns the built-in mountain names in file order.
func Mountains() ([]string, error) {
	return parseMountains(mountainsYAML)
}

func parseMountains(data []byte) ([]string, error) {
	var f mountainFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed.Mountains: %w", err)
	}
	return f.Mountains, nil
}

// MountainSeeder stores mountain names in an empty table.
type MountainSeeder interface {
	Seed(ctx context.Context, names []string) (int64, error)
}

// LoadMountains hands the built-in names to s and reports how many were stored.
func LoadMountains(ctx context.Context, s MountainSeeder) (int64, error) {
	names, err := Mountains()
	if err != nil {
		return 0, err
	}
	n, err := s.Seed(ctx, names)
	if err != nil {
		return 0, fmt.Errorf("seed.LoadMountains: %w", err)
	}
	return n, nil
}
