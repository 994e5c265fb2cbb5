package analytics

import (
	"strings"

	"github.com/tbourn/platform-dashboard/internal/domain"
)

// Cell markers used in the feature matrix and its CSV export.
const (
	Present = "✓"
	Absent  = "✗"
)

// FeatureMatrix is a platform × feature presence table. Cells[i][j] is the
// marker for Platforms[i] and Features[j].
type FeatureMatrix struct {
	Features  []string   `json:"features"`
	Platforms []string   `json:"platforms"`
	Cells     [][]string `json:"cells"`
}

// Empty reports whether the matrix has no rows.
func (m FeatureMatrix) Empty() bool { return len(m.Platforms) == 0 }

// Cell returns the marker for (platform, feature), or false if either is not
// part of the matrix.
func (m FeatureMatrix) Cell(platform, feature string) (string, bool) {
	row, col := indexOf(m.Platforms, platform), indexOf(m.Features, feature)
	if row < 0 || col < 0 {
		return "", false
	}
	return m.Cells[row][col], true
}

// FeatureTokens splits a raw feature list on commas, trimming whitespace and
// dropping empty tokens.
func FeatureTokens(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BuildFeatureMatrix derives the feature vocabulary (union of tokens in
// first-seen order) and marks a cell present when the token occurs anywhere
// in the platform's raw feature string. The check is a substring test, so
// "API" is present for a platform listing only "API Integration".
func BuildFeatureMatrix(platforms []domain.Platform) FeatureMatrix {
	m := FeatureMatrix{
		Features:  []string{},
		Platforms: make([]string, 0, len(platforms)),
		Cells:     make([][]string, 0, len(platforms)),
	}
	seen := make(map[string]struct{})
	for _, p := range platforms {
		for _, tok := range FeatureTokens(p.Features) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			m.Features = append(m.Features, tok)
		}
	}
	for _, p := range platforms {
		row := make([]string, len(m.Features))
		for j, f := range m.Features {
			if strings.Contains(p.Features, f) {
				row[j] = Present
			} else {
				row[j] = Absent
			}
		}
		m.Platforms = append(m.Platforms, p.Name)
		m.Cells = append(m.Cells, row)
	}
	return m
}

func indexOf(xs []string, s string) int {
	for i, x := range xs {
		if x == s {
			return i
		}
	}
	return -1
}
