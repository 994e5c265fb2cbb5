// Package handlers exposes the dashboard over HTTP.
//
// Handlers are transport-thin: they parse and validate query parameters,
// call the catalog and dashboard services, and translate results into JSON or
// CSV responses (including conditional responses and idempotent replays).
package handlers

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/platform-dashboard/internal/analytics"
	"github.com/tbourn/platform-dashboard/internal/domain"
	"github.com/tbourn/platform-dashboard/internal/search"
	"github.com/tbourn/platform-dashboard/internal/services"
	"github.com/tbourn/platform-dashboard/internal/utils"
)

//
// Service contracts (context-aware)
//

// CatalogService is the catalog store surface used by the review endpoints
// and for conditional responses.
type CatalogService interface {
	// ListReviewsPage returns one page of a platform's reviews and the total.
	ListReviewsPage(ctx context.Context, name string, page, pageSize int) ([]domain.Review, int64, error)
	// AddReviewIdempotent stores a review, or replays the one stored under key.
	AddReviewIdempotent(ctx context.Context, name, key, author string, rating int, comment string) (*domain.Review, bool, error)
	// CatalogETag changes whenever the platform set changes.
	CatalogETag(ctx context.Context) (string, error)
	// ReviewsETag changes whenever a review newer than since is added.
	ReviewsETag(ctx context.Context, since time.Time) (string, error)
}

// DashboardService computes the dashboard views.
type DashboardService interface {
	Comparison(ctx context.Context, c analytics.Criteria) ([]domain.Platform, error)
	OSOptions(ctx context.Context) ([]string, error)
	FeatureMatrix(ctx context.Context, c analytics.Criteria) (analytics.FeatureMatrix, error)
	Heatmap(ctx context.Context, c analytics.Criteria, platform string) (analytics.Heatmap, bool, error)
	Costs(ctx context.Context, c analytics.Criteria, in analytics.CostInput) (analytics.CostReport, error)
	Top(ctx context.Context, m analytics.Metric, n int) ([]domain.Platform, error)
	Bar(ctx context.Context, c analytics.Criteria, m analytics.Metric) (analytics.Series, error)
	Scatter(ctx context.Context, c analytics.Criteria) ([]analytics.ScatterPoint, error)
	Details(ctx context.Context, name string) (services.PlatformDetails, error)
	Compare(ctx context.Context, a, b string) (services.Comparison, error)
	Search(ctx context.Context, q string, k int) ([]search.Result, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints.
type Handlers struct {
	catalog CatalogService
	dash    DashboardService
}

// New constructs a Handlers instance bound to the given services.
func New(catalog CatalogService, dash DashboardService) *Handlers {
	return &Handlers{catalog: catalog, dash: dash}
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// Empty-state messages.
const (
	msgNoPlatforms = "No platforms match the selected criteria"
	msgNoReviews   = "No reviews in the selected window"
	msgNoPriced    = "No platform with a published price matches the selected criteria"
)

//
// Helpers
//

// pageParams parses page/page_size with defaults 1/20 and caps page_size at
// 100.
func pageParams(c *gin.Context) utils.Page {
	return utils.ParsePage(c.Query("page"), c.Query("page_size"), 20, 100)
}

// parseCriteria reads the shared filter parameters: repeated or
// comma-separated `os` values and the min_speed, min_accuracy and
// min_maintenance thresholds in [0,100].
func parseCriteria(c *gin.Context) (analytics.Criteria, error) {
	crit := analytics.Criteria{OS: analytics.ParseOSSelection(c.QueryArray("os"))}
	for _, f := range []struct {
		param string
		dst   *float64
	}{
		{"min_speed", &crit.MinSpeed},
		{"min_accuracy", &crit.MinAccuracy},
		{"min_maintenance", &crit.MinMaintenance},
	} {
		v, err := utils.ParseFloatParam(c.Query(f.param), 0)
		if err != nil || v < 0 || v > 100 {
			return analytics.Criteria{}, fmt.Errorf("%s must be a number between 0 and 100", f.param)
		}
		*f.dst = v
	}
	return crit, nil
}

// criteriaOrFail parses the filter or answers 400.
func criteriaOrFail(c *gin.Context) (analytics.Criteria, bool) {
	crit, err := parseCriteria(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return analytics.Criteria{}, false
	}
	return crit, true
}

// scopedETag derives a per-request validator from a store-level weak ETag,
// the request path and the canonical query. Different platforms or filters
// over the same store state get different validators.
func scopedETag(base string, c *gin.Context) string {
	if base == "" {
		return ""
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(c.Request.URL.Path))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(c.Request.URL.Query().Encode()))
	return fmt.Sprintf(`%s:%x"`, strings.TrimSuffix(base, `"`), h.Sum64())
}

// failService maps service and analytics errors to HTTP responses. fallback is
// the code used for unexpected (500) errors.
func failService(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrPlatformNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "platform not found")
	case errors.Is(err, services.ErrValidation):
		fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
	case errors.Is(err, services.ErrSamePlatform):
		fail(c, http.StatusBadRequest, ErrCodeSamePlatform, err.Error())
	case errors.Is(err, analytics.ErrUnknownMetric):
		fail(c, http.StatusBadRequest, ErrCodeUnknownMetric, err.Error())
	case errors.Is(err, analytics.ErrInvalidCostInput):
		fail(c, http.StatusBadRequest, ErrCodeInvalidCost, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		fail(c, http.StatusServiceUnavailable, ErrCodeInternal, "request cancelled")
	default:
		fail(c, http.StatusInternalServerError, fallback, err.Error())
	}
}
