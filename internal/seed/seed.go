// Package seed provides the default platform catalog and loaders for
// replacement catalogs supplied as YAML or as a comparison CSV export.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tbourn/platform-dashboard/internal/analytics"
	"github.com/tbourn/platform-dashboard/internal/domain"
)

//go:embed platforms.yaml
var defaultCatalog []byte

// ErrInvalidCatalog wraps every validation failure reported by the loaders.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Entry is the YAML form of a platform.
type Entry struct {
	Name             string  `yaml:"name"`
	OperatingSystem  string  `yaml:"operating_system"`
	SpeedScore       float64 `yaml:"speed_score"`
	AccuracyScore    float64 `yaml:"accuracy_score"`
	MaintenanceScore float64 `yaml:"maintenance_score"`
	PriceRange       string  `yaml:"price_range"`
	Features         string  `yaml:"features"`
}

// Catalog is the top-level YAML document.
type Catalog struct {
	Platforms []Entry `yaml:"platforms"`
}

// Default returns the embedded catalog.
func Default() ([]domain.Platform, error) {
	return LoadYAML(strings.NewReader(string(defaultCatalog)))
}

// LoadYAML decodes a catalog document. Unknown keys are rejected.
func LoadYAML(r io.Reader) ([]domain.Platform, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	out := make([]domain.Platform, 0, len(c.Platforms))
	for i, e := range c.Platforms {
		out = append(out, domain.Platform{
			Name:             strings.TrimSpace(e.Name),
			OperatingSystem:  strings.TrimSpace(e.OperatingSystem),
			SpeedScore:       e.SpeedScore,
			AccuracyScore:    e.AccuracyScore,
			MaintenanceScore: e.MaintenanceScore,
			PriceRange:       strings.TrimSpace(e.PriceRange),
			Features:         strings.TrimSpace(e.Features),
			SortOrder:        i,
		})
	}
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadCSV reads a comparison CSV export as a catalog.
func LoadCSV(r io.Reader) ([]domain.Platform, error) {
	out, err := analytics.ParseComparisonCSV(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadFile picks the loader from the file extension: .csv for CSV, anything
// else is parsed as YAML.
func LoadFile(path string) ([]domain.Platform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadCSV(f)
	}
	return LoadYAML(f)
}

// Validate checks that names are unique and non-empty and scores lie in
// [0, 100].
func Validate(platforms []domain.Platform) error {
	seen := make(map[string]struct{}, len(platforms))
	for i, p := range platforms {
		if p.Name == "" {
			return fmt.Errorf("%w: entry %d has an empty name", ErrInvalidCatalog, i+1)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate platform %q", ErrInvalidCatalog, p.Name)
		}
		seen[p.Name] = struct{}{}
		for _, s := range []float64{p.SpeedScore, p.AccuracyScore, p.MaintenanceScore} {
			if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 || s > 100 {
				return fmt.Errorf("%w: %s: score %v outside [0,100]", ErrInvalidCatalog, p.Name, s)
			}
		}
	}
	return nil
}
