// Review HTTP handlers.
//
// This file exposes:
//   - GET  /platforms/{name}/reviews   (paginated, newest first, ETag support)
//   - POST /platforms/{name}/reviews   (submit a review)
//   - GET  /reviews/heatmap            (platform × day mean-rating grid)
//
// Idempotency:
// If the client supplies an Idempotency-Key header and a review was already
// stored under that key for the platform, the stored review is returned with
// 200 and `Idempotency-Replayed: true` instead of creating a new one.
package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/platform-dashboard/internal/analytics"
	"github.com/tbourn/platform-dashboard/internal/domain"
	"github.com/tbourn/platform-dashboard/internal/http/middleware"
	"github.com/tbourn/platform-dashboard/internal/services"
)

//
// DTOs
//

// PostReviewRequest is the JSON payload for submitting a review. Fields are
// trimmed and validated by the service.
type PostReviewRequest struct {
	UserName string `json:"user_name" example:"ann"`
	Rating   int    `json:"rating" example:"5"`
	Comment  string `json:"comment" example:"Great visual editor"`
}

// PostReviewResponse wraps the stored (or replayed) review.
type PostReviewResponse struct {
	Review *domain.Review `json:"review"`
}

// ListReviewsResponse contains a page of reviews and pagination metadata.
type ListReviewsResponse struct {
	Platform   string          `json:"platform" example:"Bubble"`
	Reviews    []domain.Review `json:"reviews"`
	Pagination Pagination      `json:"pagination"`
	Message    string          `json:"message,omitempty"`
}

// HeatmapResponse is the review heat-map. Cells[i][j] is the mean rating of
// Platforms[i] on Days[j]; 0 means no review that day.
type HeatmapResponse struct {
	analytics.Heatmap
	Message string `json:"message,omitempty" example:"No reviews in the selected window"`
}

//
// Handlers
//

// PostReview godoc
// @ID          postReview
// @Summary     Submit a review
// @Description Stores a 1–5 star review with a user name and comment.
// @Description Supports idempotency via the Idempotency-Key header (same key → same review).
// @Tags        Reviews
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false  "Idempotency key for safe retries"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       name             path    string  true   "Platform name"                     example(Bubble)
// @Param       body             body    handlers.PostReviewRequest  true  "Review"
//
// @Success     201  {object}  handlers.PostReviewResponse  "Created"
// @Success     200  {object}  handlers.PostReviewResponse  "Replayed"
// @Failure     400  {object}  handlers.ErrorResponse       "Validation failed"
// @Failure     404  {object}  handlers.ErrorResponse       "Platform not found"
// @Failure     500  {object}  handlers.ErrorResponse       "Internal error"
// @Router      /platforms/{name}/reviews [post]
func (h *Handlers) PostReview(c *gin.Context) {
	name := c.Param("name")

	var req PostReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.ObserveReviewSubmitted(middleware.OutcomeInvalid)
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	// Fail fast at the edge; the service validates again.
	if _, _, err := services.ValidateReview(req.UserName, req.Rating, req.Comment); err != nil {
		middleware.ObserveReviewSubmitted(middleware.OutcomeInvalid)
		failService(c, err, ErrCodeCreateFailed)
		return
	}

	key, _ := idempotencyKey(c)
	r, replayed, err := h.catalog.AddReviewIdempotent(c.Request.Context(), name, key, req.UserName, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlatformNotFound):
			middleware.ObserveReviewSubmitted(middleware.OutcomeNotFound)
		case errors.Is(err, services.ErrValidation):
			middleware.ObserveReviewSubmitted(middleware.OutcomeInvalid)
		default:
			middleware.ObserveReviewSubmitted(middleware.OutcomeError)
		}
		failService(c, err, ErrCodeCreateFailed)
		return
	}

	if replayed {
		middleware.ObserveReviewSubmitted(middleware.OutcomeReplayed)
		c.Header("Idempotency-Replayed", "true")
		ok(c, http.StatusOK, PostReviewResponse{Review: r})
		return
	}
	middleware.ObserveReviewSubmitted(middleware.OutcomeCreated)
	ok(c, http.StatusCreated, PostReviewResponse{Review: r})
}

// ListReviews godoc
// @ID          listReviews
// @Summary     List a platform's reviews
// @Description Returns a page of reviews, newest first.
// @Tags        Reviews
// @Produce     json
//
// @Param       name           path    string  true   "Platform name"   example(Bubble)
// @Param       page           query   int     false  "Page number"     minimum(1) default(1)
// @Param       page_size      query   int     false  "Items per page"  minimum(1) maximum(100) default(20)
// @Param       If-None-Match  header  string  false  "ETag from a previous response"
//
// @Success     200  {object}  handlers.ListReviewsResponse
// @Success     304  "Not modified"
// @Failure     404  {object}  handlers.ErrorResponse  "Platform not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /platforms/{name}/reviews [get]
func (h *Handlers) ListReviews(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	// ETag pre-check (best effort).
	if base, err := h.catalog.ReviewsETag(ctx, time.Time{}); err == nil {
		if notModified(c, scopedETag(base, c)) {
			return
		}
	}

	page := pageParams(c)

	items, total, err := h.catalog.ListReviewsPage(ctx, name, page.Number, page.Size)
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}

	resp := ListReviewsResponse{
		Platform: name,
		Reviews:  items,
		Pagination: Pagination{
			Page:       page.Number,
			PageSize:   page.Size,
			Total:      total,
			TotalPages: page.Pages(total),
			HasNext:    page.HasNext(total),
		},
	}
	if total == 0 {
		resp.Message = "No reviews yet"
	}
	ok(c, http.StatusOK, resp)
}

// ReviewHeatmap godoc
// @ID          reviewHeatmap
// @Summary     Review heat-map
// @Description Mean rating per platform and calendar day over the trailing review window.
// @Description Filters apply unless a single platform is requested.
// @Tags        Reviews
// @Produce     json
//
// @Param       platform         query  string    false  "Restrict to one platform"  example(Bubble)
// @Param       os               query  []string  false  "Operating systems"  collectionFormat(multi)
// @Param       min_speed        query  number    false  "Minimum speed score"
// @Param       min_accuracy     query  number    false  "Minimum accuracy score"
// @Param       min_maintenance  query  number    false  "Minimum maintenance score"
//
// @Success     200  {object}  handlers.HeatmapResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Platform not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /reviews/heatmap [get]
func (h *Handlers) ReviewHeatmap(c *gin.Context) {
	crit, okCrit := criteriaOrFail(c)
	if !okCrit {
		return
	}
	hm, has, err := h.dash.Heatmap(c.Request.Context(), crit, strings.TrimSpace(c.Query("platform")))
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}
	resp := HeatmapResponse{Heatmap: hm}
	if !has {
		resp.Message = msgNoReviews
		middleware.ObserveEmptyResult("heatmap")
	}
	ok(c, http.StatusOK, resp)
}

// idempotencyKey prefers the key validated by middleware and falls back to
// the raw header when the middleware is not installed.
func idempotencyKey(c *gin.Context) (string, bool) {
	if k, found := middleware.GetIdempotencyKey(c); found {
		return k, true
	}
	if v := strings.TrimSpace(c.GetHeader(middleware.HeaderIdempotencyKey)); v != "" {
		return v, true
	}
	return "", false
}
