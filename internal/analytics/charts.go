package analytics

import (
	"fmt"

	"github.com/tbourn/platform-dashboard/internal/domain"
)

// Point is a labelled value in a one-dimensional series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is a titled list of points (bar and radar charts).
type Series struct {
	Title  string  `json:"title"`
	Points []Point `json:"points"`
}

// ScatterPoint places a platform by speed (x) and accuracy (y), sized by
// maintenance.
type ScatterPoint struct {
	Platform string  `json:"platform"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
}

// RadarSeries returns p's three scores in Metrics order.
func RadarSeries(p domain.Platform) Series {
	s := Series{Title: fmt.Sprintf("%s Performance Metrics", p.Name), Points: make([]Point, 0, len(Metrics))}
	for _, m := range Metrics {
		s.Points = append(s.Points, Point{Label: m.Label(), Value: m.Score(p)})
	}
	return s
}

// BarSeries returns one point per platform for metric m, in input order.
func BarSeries(platforms []domain.Platform, m Metric) (Series, error) {
	m, err := ParseMetric(string(m))
	if err != nil {
		return Series{}, err
	}
	s := Series{Title: fmt.Sprintf("%s Comparison Across Platforms", m.Label()), Points: make([]Point, 0, len(platforms))}
	for _, p := range platforms {
		s.Points = append(s.Points, Point{Label: p.Name, Value: m.Score(p)})
	}
	return s, nil
}

// ScatterSeries returns the speed-vs-accuracy plot data, in input order.
func ScatterSeries(platforms []domain.Platform) []ScatterPoint {
	out := make([]ScatterPoint, 0, len(platforms))
	for _, p := range platforms {
		out = append(out, ScatterPoint{Platform: p.Name, X: p.SpeedScore, Y: p.AccuracyScore, Size: p.MaintenanceScore})
	}
	return out
}
