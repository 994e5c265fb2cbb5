// Package httpapi wires the HTTP transport (Gin) to the catalog and dashboard
// services, middleware, and route handlers. It centralizes cross-cutting
// concerns such as tracing, correlation IDs, logging/redaction, panic
// recovery, metrics, compression, CORS, security headers, idempotency, and
// rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tbourn/platform-dashboard/internal/config"
	_ "github.com/tbourn/platform-dashboard/internal/docs" // registers the swagger document
	"github.com/tbourn/platform-dashboard/internal/http/handlers"
	"github.com/tbourn/platform-dashboard/internal/http/middleware"
	"github.com/tbourn/platform-dashboard/internal/repo"
	"github.com/tbourn/platform-dashboard/internal/services"
)

// Services bundles the application services the router mounts.
type Services struct {
	Catalog   *services.CatalogService
	Dashboard *services.DashboardService
}

// NewServices builds the catalog and dashboard services over db using the
// idempotency, review-window and timezone settings from cfg.
func NewServices(db *gorm.DB, cfg config.Config) Services {
	catalog := &services.CatalogService{DB: db, IdempotencyTTL: cfg.IdempotencyTTL}
	return Services{
		Catalog: catalog,
		Dashboard: &services.DashboardService{
			Catalog:  catalog,
			Window:   cfg.ReviewWindow,
			Location: cfg.Location(),
		},
	}
}

// idempotencyLookup reports whether a live Idempotency-Key record exists for
// the named platform. Unknown platforms and lookup errors count as a miss so
// the request reaches the handler, which owns the real error response.
func idempotencyLookup(db *gorm.DB) middleware.IdempotencyLookup {
	return func(ctx context.Context, platform, key string, now time.Time) (bool, error) {
		p, err := repo.GetPlatformByName(ctx, db, platform)
		if err != nil {
			return false, nil
		}
		rec, err := repo.GetIdempotency(ctx, db, p.ID, key, now)
		if err != nil || rec == nil {
			return false, nil
		}
		return true, nil
	}
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), idempotency and rate
// limiting, compression, CORS and security headers, health, metrics and docs
// endpoints, and then mounts the dashboard API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured logs with header masking and query scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Idempotency validator (before rate limiter to allow bypass on replay)
//  8. Rate limiter (per IP and platform, bypass on replay)
//  9. Gzip, CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	registerRoutes(r, db, NewServices(db, cfg), cfg)
}

func registerRoutes(r *gin.Engine, db *gorm.DB, svcs Services, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.Logger(middleware.LogOptions{
		MaskHeaders: []string{
			"X-API-Key",
		},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (64 KiB; reviews are the only bodies)
	r.Use(limitBody(64 << 10))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Idempotency validation (before rate limiting)
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{MaxLen: 128},
		idempotencyLookup(db),
	))

	// 8) Token-bucket rate limiter per IP and platform
	rl := middleware.NewRateLimiter(middleware.RateLimitOptions{
		RPS:    cfg.RateRPS,
		Burst:  cfg.RateBurst,
		Key:    middleware.KeyByIPAndPlatform(),
		Exempt: []string{"/health", "/metrics"},
	})
	r.Use(rl.Handler())

	// 9) Compression for JSON tables and CSV exports
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// CORS posture (safe defaults: allow all if none configured)
	allowHeaders := []string{"Origin", "Content-Type", "Accept", "Authorization", "If-None-Match", middleware.HeaderIdempotencyKey}
	exposeHeaders := []string{"X-Request-ID", "Content-Length", "ETag", "Content-Disposition", "Idempotency-Replayed"}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS).
	// Reads revalidate so clients always send If-None-Match.
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		Revalidate:   true,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// API docs
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h := handlers.New(svcs.Catalog, svcs.Dashboard)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Comparison table and catalog views
		api.GET("/platforms", h.ListPlatforms)
		api.GET("/platforms/export.csv", h.ExportPlatformsCSV)
		api.GET("/platforms/os", h.ListOSOptions)
		api.GET("/platforms/top", h.TopPlatforms)
		api.GET("/platforms/search", h.SearchPlatforms)
		api.GET("/platforms/compare", h.ComparePlatforms)
		api.GET("/platforms/:name", h.GetPlatform)

		// Reviews
		api.GET("/platforms/:name/reviews", h.ListReviews)
		api.POST("/platforms/:name/reviews", h.PostReview)
		api.GET("/reviews/heatmap", h.ReviewHeatmap)

		// Feature matrix
		api.GET("/features", h.FeatureMatrix)
		api.GET("/features/export.csv", h.ExportFeatureMatrixCSV)

		// Charts
		api.GET("/charts/bar", h.BarChart)
		api.GET("/charts/scatter", h.ScatterChart)

		// Cost calculator
		api.GET("/cost", h.CostEstimate)
		api.GET("/cost/export.csv", h.ExportCostCSV)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
