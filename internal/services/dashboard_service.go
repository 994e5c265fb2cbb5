// Package services – DashboardService
//
// DashboardService wires the catalog store into the analytics pipeline:
// Catalog → Filter → {feature matrix, review heat-map, cost estimate, chart
// series}. Each call reloads what it needs and recomputes from scratch; the
// service holds no mutable state.
package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/platform-dashboard/internal/analytics"
	"github.com/tbourn/platform-dashboard/internal/domain"
	"github.com/tbourn/platform-dashboard/internal/search"
)

// Catalog is the read side of the catalog store consumed by the dashboard.
// *CatalogService implements it.
type Catalog interface {
	ListPlatforms(ctx context.Context) ([]domain.Platform, error)
	GetPlatform(ctx context.Context, name string) (*domain.Platform, error)
	ReviewsSince(ctx context.Context, names []string, since time.Time) ([]domain.Review, error)
	RatingSummary(ctx context.Context, name string) (int64, float64, error)
}

// DashboardService computes the dashboard views.
type DashboardService struct {
	Catalog Catalog

	// Window is the heat-map review window; zero means analytics.DefaultWindow.
	Window time.Duration
	// Location decides calendar-day boundaries; nil means time.Local.
	Location *time.Location
	// Now overrides the clock in tests.
	Now func() time.Time
}

// PlatformDetails is the single-platform view.
type PlatformDetails struct {
	Platform     domain.Platform  `json:"platform"`
	AverageScore float64          `json:"average_score"`
	Features     []string         `json:"features"`
	Radar        analytics.Series `json:"radar"`
	ReviewCount  int64            `json:"review_count"`
	MeanRating   float64          `json:"mean_rating"`
}

// MetricDelta compares one score between two platforms.
type MetricDelta struct {
	Metric analytics.Metric `json:"metric"`
	A      float64          `json:"a"`
	B      float64          `json:"b"`
	Diff   float64          `json:"diff"`
}

// Comparison is the head-to-head view of two platforms.
type Comparison struct {
	A        domain.Platform         `json:"a"`
	B        domain.Platform         `json:"b"`
	Metrics  []MetricDelta           `json:"metrics"`
	Features analytics.FeatureMatrix `json:"features"`
	Prices   map[string]string       `json:"prices"`
}

func (s *DashboardService) span(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("services/DashboardService").Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *DashboardService) heatmapOptions() analytics.HeatmapOptions {
	opts := analytics.HeatmapOptions{Window: s.Window, Location: s.Location}
	if s.Now != nil {
		opts.Now = s.Now()
	}
	return opts
}

// Comparison returns the platforms that pass c, in catalog order.
func (s *DashboardService) Comparison(ctx context.Context, c analytics.Criteria) ([]domain.Platform, error) {
	ctx, span := s.span(ctx, "Comparison", attribute.StringSlice("filter.os", c.OS))
	defer span.End()

	all, err := s.Catalog.ListPlatforms(ctx)
	if err != nil {
		return nil, err
	}
	out := analytics.Filter(all, c)
	span.SetAttributes(attribute.Int("platforms", len(out)))
	return out, nil
}

// OSOptions returns the OS vocabulary of the whole catalog.
func (s *DashboardService) OSOptions(ctx context.Context) ([]string, error) {
	all, err := s.Catalog.ListPlatforms(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.OSOptions(all), nil
}

// FeatureMatrix builds the feature matrix over the filtered platforms.
func (s *DashboardService) FeatureMatrix(ctx context.Context, c analytics.Criteria) (analytics.FeatureMatrix, error) {
	ps, err := s.Comparison(ctx, c)
	if err != nil {
		return analytics.FeatureMatrix{}, err
	}
	return analytics.BuildFeatureMatrix(ps), nil
}

// Heatmap buckets the windowed reviews of the filtered platforms. When
// platform is non-empty only that platform is considered; an unknown name
// yields ErrPlatformNotFound. ok is false when no review falls in the window.
func (s *DashboardService) Heatmap(ctx context.Context, c analytics.Criteria, platform string) (h analytics.Heatmap, ok bool, err error) {
	ctx, span := s.span(ctx, "Heatmap", attribute.String("platform.name", platform))
	defer span.End()

	opts := s.heatmapOptions()
	var names []string
	if platform != "" {
		p, err := s.Catalog.GetPlatform(ctx, platform)
		if err != nil {
			return analytics.Heatmap{}, false, err
		}
		names = []string{p.Name}
	} else {
		ps, err := s.Comparison(ctx, c)
		if err != nil {
			return analytics.Heatmap{}, false, err
		}
		if len(ps) == 0 {
			h, _ := analytics.BuildHeatmap(nil, opts)
			return h, false, nil
		}
		for _, p := range ps {
			names = append(names, p.Name)
		}
	}

	reviews, err := s.Catalog.ReviewsSince(ctx, names, opts.Since())
	if err != nil {
		return analytics.Heatmap{}, false, err
	}
	h, ok = analytics.BuildHeatmap(reviews, opts)
	span.SetAttributes(attribute.Int("reviews", len(reviews)), attribute.Bool("has_data", ok))
	return h, ok, nil
}

// Costs estimates the cost of the filtered platforms.
func (s *DashboardService) Costs(ctx context.Context, c analytics.Criteria, in analytics.CostInput) (analytics.CostReport, error) {
	if in.Period == "" {
		in.Period = analytics.PeriodMonthly
	}
	if err := in.Validate(); err != nil {
		return analytics.CostReport{}, err
	}
	ps, err := s.Comparison(ctx, c)
	if err != nil {
		return analytics.CostReport{}, err
	}
	return analytics.EstimateCosts(ps, in)
}

// Top ranks the whole catalog by metric.
func (s *DashboardService) Top(ctx context.Context, m analytics.Metric, n int) ([]domain.Platform, error) {
	m, err := analytics.ParseMetric(string(m))
	if err != nil {
		return nil, err
	}
	all, err := s.Catalog.ListPlatforms(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.TopPlatforms(all, m, n)
}

// Bar returns the per-platform series for metric over the filtered platforms.
func (s *DashboardService) Bar(ctx context.Context, c analytics.Criteria, m analytics.Metric) (analytics.Series, error) {
	m, err := analytics.ParseMetric(string(m))
	if err != nil {
		return analytics.Series{}, err
	}
	ps, err := s.Comparison(ctx, c)
	if err != nil {
		return analytics.Series{}, err
	}
	return analytics.BarSeries(ps, m)
}

// Scatter returns the speed-vs-accuracy series over the filtered platforms.
func (s *DashboardService) Scatter(ctx context.Context, c analytics.Criteria) ([]analytics.ScatterPoint, error) {
	ps, err := s.Comparison(ctx, c)
	if err != nil {
		return nil, err
	}
	return analytics.ScatterSeries(ps), nil
}

// Details assembles the single-platform view.
func (s *DashboardService) Details(ctx context.Context, name string) (PlatformDetails, error) {
	ctx, span := s.span(ctx, "Details", attribute.String("platform.name", name))
	defer span.End()

	p, err := s.Catalog.GetPlatform(ctx, name)
	if err != nil {
		return PlatformDetails{}, err
	}
	count, mean, err := s.Catalog.RatingSummary(ctx, name)
	if err != nil {
		return PlatformDetails{}, err
	}
	return PlatformDetails{
		Platform:     *p,
		AverageScore: analytics.AverageScore(*p),
		Features:     analytics.FeatureTokens(p.Features),
		Radar:        analytics.RadarSeries(*p),
		ReviewCount:  count,
		MeanRating:   mean,
	}, nil
}

// Compare builds the head-to-head view. Diff is A minus B.
func (s *DashboardService) Compare(ctx context.Context, a, b string) (Comparison, error) {
	ctx, span := s.span(ctx, "Compare", attribute.String("platform.a", a), attribute.String("platform.b", b))
	defer span.End()

	if a == b {
		return Comparison{}, ErrSamePlatform
	}
	pa, err := s.Catalog.GetPlatform(ctx, a)
	if err != nil {
		return Comparison{}, err
	}
	pb, err := s.Catalog.GetPlatform(ctx, b)
	if err != nil {
		return Comparison{}, err
	}

	out := Comparison{
		A:        *pa,
		B:        *pb,
		Metrics:  make([]MetricDelta, 0, len(analytics.Metrics)),
		Features: analytics.BuildFeatureMatrix([]domain.Platform{*pa, *pb}),
		Prices:   map[string]string{pa.Name: pa.PriceRange, pb.Name: pb.PriceRange},
	}
	for _, m := range analytics.Metrics {
		va, vb := m.Score(*pa), m.Score(*pb)
		out.Metrics = append(out.Metrics, MetricDelta{Metric: m, A: va, B: vb, Diff: va - vb})
	}
	return out, nil
}

// searchStopwords carry no signal in platform descriptors; "mo" is the
// per-month suffix of every price range.
var searchStopwords = []string{"a", "an", "and", "for", "in", "of", "on", "or", "the", "to", "with", "mo"}

// minSearchScore drops matches where a single shared word is lost in a long
// query.
const minSearchScore = 0.05

// Search ranks the catalog against q and returns up to k matches.
func (s *DashboardService) Search(ctx context.Context, q string, k int) ([]search.Result, error) {
	ctx, span := s.span(ctx, "Search", attribute.String("query", q))
	defer span.End()

	all, err := s.Catalog.ListPlatforms(ctx)
	if err != nil {
		return nil, err
	}
	out := search.NewPlatformIndex(all,
		search.WithStopwords(searchStopwords),
		search.WithMinScore(minSearchScore),
	).TopK(q, k)
	if out == nil {
		out = []search.Result{}
	}
	return out, nil
}
