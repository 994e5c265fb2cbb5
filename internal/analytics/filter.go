package analytics

import (
	"strings"

	"github.com/tbourn/platform-dashboard/internal/domain"
)

// AllOS is the selection value that lifts the operating-system restriction.
const AllOS = "All"

// Criteria narrows the catalog. An empty OS set means no OS restriction; a
// zero threshold lets every score through.
type Criteria struct {
	OS             []string
	MinSpeed       float64
	MinAccuracy    float64
	MinMaintenance float64
}

// ParseOSSelection normalizes raw selection values (repeated query params or
// comma-separated lists). Blank tokens are dropped and the presence of AllOS
// clears the selection.
func ParseOSSelection(values []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, v := range values {
		for _, tok := range strings.Split(v, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			if strings.EqualFold(tok, AllOS) {
				return nil
			}
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}
	return out
}

// Filter returns the platforms whose OS descriptor contains at least one of
// c.OS as a substring and whose scores meet every threshold. Output preserves
// input order and never aliases the input slice.
func Filter(platforms []domain.Platform, c Criteria) []domain.Platform {
	out := make([]domain.Platform, 0, len(platforms))
	for _, p := range platforms {
		if !matchesOS(p.OperatingSystem, c.OS) {
			continue
		}
		if p.SpeedScore < c.MinSpeed || p.AccuracyScore < c.MinAccuracy || p.MaintenanceScore < c.MinMaintenance {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesOS(descriptor string, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	for _, t := range tokens {
		if t != "" && strings.Contains(descriptor, t) {
			return true
		}
	}
	return false
}

// OSOptions lists the distinct OS tokens found across the catalog, splitting
// descriptors on '/' and ',', in first-seen order.
func OSOptions(platforms []domain.Platform) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, p := range platforms {
		for _, tok := range strings.FieldsFunc(p.OperatingSystem, func(r rune) bool { return r == '/' || r == ',' }) {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}
	return out
}
