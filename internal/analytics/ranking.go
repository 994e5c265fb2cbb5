package analytics

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tbourn/platform-dashboard/internal/domain"
)

// ErrUnknownMetric is returned for metric names other than speed, accuracy
// and maintenance.
var ErrUnknownMetric = errors.New("unknown metric")

// Metric names a platform score.
type Metric string

const (
	MetricSpeed       Metric = "speed"
	MetricAccuracy    Metric = "accuracy"
	MetricMaintenance Metric = "maintenance"
)

// Metrics lists the scores in display order.
var Metrics = []Metric{MetricSpeed, MetricAccuracy, MetricMaintenance}

// ParseMetric is case-insensitive and tolerates the "_score" suffix used by
// the CSV headers ("Speed_Score").
func ParseMetric(s string) (Metric, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	k = strings.TrimSuffix(k, "_score")
	switch Metric(k) {
	case MetricSpeed, MetricAccuracy, MetricMaintenance:
		return Metric(k), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// Label is the title-cased metric name ("Speed").
func (m Metric) Label() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

// Score returns p's value for m.
func (m Metric) Score(p domain.Platform) float64 {
	switch m {
	case MetricSpeed:
		return p.SpeedScore
	case MetricAccuracy:
		return p.AccuracyScore
	case MetricMaintenance:
		return p.MaintenanceScore
	}
	return 0
}

// AverageScore is the unweighted mean of the three scores.
func AverageScore(p domain.Platform) float64 {
	return (p.SpeedScore + p.AccuracyScore + p.MaintenanceScore) / 3
}

// TopPlatforms returns up to n platforms ranked by m, highest first. Ties keep
// catalog order. n <= 0 returns every platform.
func TopPlatforms(platforms []domain.Platform, m Metric, n int) ([]domain.Platform, error) {
	m, err := ParseMetric(string(m))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Platform, len(platforms))
	copy(out, platforms)
	sort.SliceStable(out, func(i, j int) bool { return m.Score(out[i]) > m.Score(out[j]) })
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out, nil
}
