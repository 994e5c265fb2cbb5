// Platform HTTP handlers.
//
// This file exposes the catalog views:
//   - GET /platforms              (filtered comparison table, ETag support)
//   - GET /platforms/export.csv   (comparison table as CSV)
//   - GET /platforms/os           (OS filter vocabulary)
//   - GET /platforms/top          (top-N by metric)
//   - GET /platforms/search       (free-text search)
//   - GET /platforms/compare      (head-to-head view)
//   - GET /platforms/{name}       (single-platform details)
package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/platform-dashboard/internal/analytics"
	"github.com/tbourn/platform-dashboard/internal/domain"
	"github.com/tbourn/platform-dashboard/internal/http/middleware"
	"github.com/tbourn/platform-dashboard/internal/search"
	"github.com/tbourn/platform-dashboard/internal/utils"
)

//
// DTOs
//

// ListPlatformsResponse is the filtered comparison table.
type ListPlatformsResponse struct {
	Platforms []domain.Platform `json:"platforms"`
	Count     int               `json:"count"`
	// Message is set when no platform passes the filter.
	Message string `json:"message,omitempty" example:"No platforms match the selected criteria"`
}

// OSOptionsResponse lists the values accepted by the `os` filter. The first
// entry is always "All".
type OSOptionsResponse struct {
	Options []string `json:"options"`
}

// TopPlatformsResponse ranks platforms by one metric.
type TopPlatformsResponse struct {
	Metric    analytics.Metric  `json:"metric" example:"speed"`
	Platforms []domain.Platform `json:"platforms"`
}

// SearchResponse carries ranked search hits.
type SearchResponse struct {
	Query   string          `json:"query" example:"mobile apps"`
	Results []search.Result `json:"results"`
	Message string          `json:"message,omitempty"`
}

//
// Handlers
//

// ListPlatforms godoc
// @ID          listPlatforms
// @Summary     Filtered comparison table
// @Description Returns the platforms that pass the OS and minimum-score filters, in catalog order.
// @Description Supports conditional requests via a weak ETag.
// @Tags        Platforms
// @Produce     json
//
// @Param       os               query  []string  false  "Operating systems (repeat or comma-separate; All clears)"  collectionFormat(multi)
// @Param       min_speed        query  number    false  "Minimum speed score"        minimum(0) maximum(100)
// @Param       min_accuracy     query  number    false  "Minimum accuracy score"     minimum(0) maximum(100)
// @Param       min_maintenance  query  number    false  "Minimum maintenance score"  minimum(0) maximum(100)
// @Param       If-None-Match    header string    false  "ETag from a previous response"
//
// @Success     200  {object}  handlers.ListPlatformsResponse
// @Success     304  "Not modified"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /platforms [get]
func (h *Handlers) ListPlatforms(c *gin.Context) {
	ctx := c.Request.Context()

	crit, okCrit := criteriaOrFail(c)
	if !okCrit {
		return
	}

	// ETag pre-check (best effort).
	if base, err := h.catalog.CatalogETag(ctx); err == nil {
		if notModified(c, scopedETag(base, c)) {
			return
		}
	}

	ps, err := h.dash.Comparison(ctx, crit)
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}

	resp := ListPlatformsResponse{Platforms: ps, Count: len(ps)}
	if len(ps) == 0 {
		resp.Message = msgNoPlatforms
		middleware.ObserveEmptyResult("comparison")
	}
	ok(c, http.StatusOK, resp)
}

// ExportPlatformsCSV godoc
// @ID          exportPlatformsCSV
// @Summary     Comparison table as CSV
// @Description Header: Platform,Operating_System,Speed_Score,Accuracy_Score,Maintenance_Score,Price_Range,Features
// @Tags        Export
// @Produce     text/csv
//
// @Param       os               query  []string  false  "Operating systems"  collectionFormat(multi)
// @Param       min_speed        query  number    false  "Minimum speed score"
// @Param       min_accuracy     query  number    false  "Minimum accuracy score"
// @Param       min_maintenance  query  number    false  "Minimum maintenance score"
//
// @Success     200  {file}    file
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /platforms/export.csv [get]
func (h *Handlers) ExportPlatformsCSV(c *gin.Context) {
	crit, okCrit := criteriaOrFail(c)
	if !okCrit {
		return
	}
	ps, err := h.dash.Comparison(c.Request.Context(), crit)
	if err != nil {
		failService(c, err, ErrCodeExportFailed)
		return
	}
	csvAttachment(c, "platform_comparison.csv", func(w io.Writer) error {
		return analytics.ExportComparisonCSV(w, ps)
	})
}

// ListOSOptions godoc
// @ID          listOSOptions
// @Summary     OS filter options
// @Tags        Platforms
// @Produce     json
// @Success     200  {object}  handlers.OSOptionsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /platforms/os [get]
func (h *Handlers) ListOSOptions(c *gin.Context) {
	opts, err := h.dash.OSOptions(c.Request.Context())
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, OSOptionsResponse{Options: append([]string{analytics.AllOS}, opts...)})
}

// TopPlatforms godoc
// @ID          topPlatforms
// @Summary     Top platforms by metric
// @Tags        Platforms
// @Produce     json
//
// @Param       metric  query  string  false  "speed, accuracy or maintenance"  default(speed)
// @Param       n       query  int     false  "How many"                        minimum(1) maximum(50) default(3)
//
// @Success     200  {object}  handlers.TopPlatformsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /platforms/top [get]
func (h *Handlers) TopPlatforms(c *gin.Context) {
	m, err := analytics.ParseMetric(c.DefaultQuery("metric", string(analytics.MetricSpeed)))
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}
	n, err := utils.ParseIntParam(c.Query("n"), 3)
	if err != nil || n < 1 || n > 50 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "n must be an integer between 1 and 50")
		return
	}

	ps, err := h.dash.Top(c.Request.Context(), m, n)
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, TopPlatformsResponse{Metric: m, Platforms: ps})
}

// SearchPlatforms godoc
// @ID          searchPlatforms
// @Summary     Search platforms
// @Description Ranks platforms by token overlap between the query and their name, OS, features and price.
// @Tags        Platforms
// @Produce     json
//
// @Param       q  query  string  true   "Query"        example(mobile apps)
// @Param       k  query  int     false  "Max results"  minimum(1) maximum(20) default(5)
//
// @Success     200  {object}  handlers.SearchResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /platforms/search [get]
func (h *Handlers) SearchPlatforms(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "q required")
		return
	}
	k, err := utils.ParseIntParam(c.Query("k"), 5)
	if err != nil || k < 1 || k > 20 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "k must be an integer between 1 and 20")
		return
	}

	res, err := h.dash.Search(c.Request.Context(), q, k)
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}
	resp := SearchResponse{Query: q, Results: res}
	if len(res) == 0 {
		resp.Message = msgNoPlatforms
		middleware.ObserveEmptyResult("search")
	}
	ok(c, http.StatusOK, resp)
}

// ComparePlatforms godoc
// @ID          comparePlatforms
// @Summary     Head-to-head comparison
// @Description Metric deltas (a minus b), feature matrix and prices of two different platforms.
// @Tags        Platforms
// @Produce     json
//
// @Param       a  query  string  true  "First platform"   example(Bubble)
// @Param       b  query  string  true  "Second platform"  example(Webflow)
//
// @Success     200  {object}  services.Comparison
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Platform not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /platforms/compare [get]
func (h *Handlers) ComparePlatforms(c *gin.Context) {
	a, b := strings.TrimSpace(c.Query("a")), strings.TrimSpace(c.Query("b"))
	if a == "" || b == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "a and b required")
		return
	}
	cmp, err := h.dash.Compare(c.Request.Context(), a, b)
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, cmp)
}

// GetPlatform godoc
// @ID          getPlatform
// @Summary     Platform details
// @Description Scores, average score, features, radar series and rating summary of one platform.
// @Tags        Platforms
// @Produce     json
//
// @Param       name  path  string  true  "Platform name"  example(Bubble)
//
// @Success     200  {object}  services.PlatformDetails
// @Failure     404  {object}  handlers.ErrorResponse  "Platform not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /platforms/{name} [get]
func (h *Handlers) GetPlatform(c *gin.Context) {
	d, err := h.dash.Details(c.Request.Context(), c.Param("name"))
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, d)
}
