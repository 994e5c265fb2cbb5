package httpapi

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/platform-dashboard/internal/config"
	"github.com/tbourn/platform-dashboard/internal/domain"
	"github.com/tbourn/platform-dashboard/internal/http/middleware"
	"github.com/tbourn/platform-dashboard/internal/repo"
)

// --- test DB helper (pure-Go sqlite, no CGO) ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:routerdb_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedPlatform(t *testing.T, db *gorm.DB, name, os, price string) *domain.Platform {
	t.Helper()
	p := &domain.Platform{Name: name, OperatingSystem: os, SpeedScore: 80, AccuracyScore: 80, MaintenanceScore: 80, PriceRange: price, Features: "API"}
	if err := repo.CreatePlatform(context.Background(), db, p); err != nil {
		t.Fatalf("seed platform: %v", err)
	}
	return p
}

func testConfig(base string) config.Config {
	return config.Config{
		APIBasePath:  base,
		RateRPS:      100,
		RateBurst:    10,
		CORS:         config.CORSConfig{AllowedOrigins: nil}, // triggers AllowAllOrigins branch
		Security:     config.SecurityConfig{EnableHSTS: false, HSTSMaxAge: 0},
		OTEL:         config.OTELConfig{ServiceName: "test-svc"},
		ReviewWindow: 30 * 24 * time.Hour,
	}
}

func TestRegisterRoutes_CORSAllowAll_Health_Metrics_Fallbacks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, newTestDB(t), testConfig("/api/v1"))

	// /health works
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	// CORS (AllowAllOrigins) → header "*"
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}
	// reads revalidate
	if got := w.Header().Get("Cache-Control"); got != "no-cache" {
		t.Fatalf("Cache-Control=%q", got)
	}

	// /metrics is wired
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || len(w.Body.Bytes()) == 0 {
		t.Fatalf("GET /metrics bad: code=%d len=%d", w.Code, w.Body.Len())
	}

	// NoRoute → 404
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope expected 404, got %d", w.Code)
	}

	// NoMethod → 405 (POST /health)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health expected 405, got %d", w.Code)
	}

	// Swagger is off unless enabled
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("swagger should be disabled, got %d", w.Code)
	}
}

func TestRegisterRoutes_CORSWithOrigins_HeaderEcho(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := testConfig("/api/v2")
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{"http://example.com"}}
	RegisterRoutes(r, newTestDB(t), cfg)

	// Any request runs through CORS middleware; header should reflect origin.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Fatalf("expected ACAO echo, got %q", got)
	}
}

func TestRegisterRoutes_APIMountedUnderBasePath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	db := newTestDB(t)
	seedPlatform(t, db, "Bubble", "Web-based", "$25-299/mo")
	seedPlatform(t, db, "Power Apps", "Windows/Web", "$20/user/mo")

	cfg := testConfig("/api/v1")
	cfg.SwaggerEnabled = true
	RegisterRoutes(r, db, cfg)

	for _, path := range []string{
		"/api/v1/platforms",
		"/api/v1/platforms/os",
		"/api/v1/platforms/top?metric=speed",
		"/api/v1/platforms/search?q=api",
		"/api/v1/platforms/compare?a=Bubble&b=Power%20Apps",
		"/api/v1/platforms/Power%20Apps",
		"/api/v1/platforms/Bubble/reviews",
		"/api/v1/reviews/heatmap",
		"/api/v1/features",
		"/api/v1/charts/bar",
		"/api/v1/charts/scatter",
		"/api/v1/cost",
		"/api/v1/platforms/export.csv",
		"/api/v1/features/export.csv",
		"/api/v1/cost/export.csv",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d body=%s", path, w.Code, w.Body.String())
		}
	}

	// Unprefixed API paths are not mounted.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/platforms", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /platforms expected 404, got %d", w.Code)
	}

	// Swagger UI is mounted when enabled.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /swagger/doc.json = %d", w.Code)
	}
}

func TestRegisterRoutes_GzipCSVExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	db := newTestDB(t)
	seedPlatform(t, db, "Bubble", "Web-based", "$25-299/mo")
	RegisterRoutes(r, db, testConfig("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/platforms/export.csv", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoding, headers=%v", w.Header())
	}
	zr, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read gzip: %v", err)
	}
	if !strings.HasPrefix(string(body), "Platform,Operating_System,") || !strings.Contains(string(body), "Bubble,Web-based") {
		t.Fatalf("unexpected csv: %q", body)
	}
}

func Test_limitBody_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// tiny cap to trigger MaxBytesReader
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")) // 12 bytes
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 from limitBody, got %d", w.Code)
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// "/" and "" should mount at root
	root1 := groupWithPrefix(r, "/")
	root1.GET("/one", func(c *gin.Context) { c.String(http.StatusOK, "one") })
	root2 := groupWithPrefix(r, "")
	root2.GET("/two", func(c *gin.Context) { c.String(http.StatusOK, "two") })

	// non-root prefix
	api := groupWithPrefix(r, "/api")
	api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for path, want := range map[string]string{"/one": "one", "/two": "two", "/api/ping": "pong"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || rec.Body.String() != want {
			t.Fatalf("GET %s got %d %q", path, rec.Code, rec.Body.String())
		}
	}
}

// Smoke test that a request traverses idempotency + ratelimit + otel + security headers pipeline.
func TestPipeline_Smoke(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := testConfig("/api/v1")
	cfg.Security = config.SecurityConfig{EnableHSTS: true, HSTSMaxAge: time.Hour} // enabled (but only set on https)
	RegisterRoutes(r, newTestDB(t), cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("pipeline GET /health = %d", w.Code)
	}
	// RequestID header should be present (from RequestID middleware)
	if rid := w.Header().Get("X-Request-ID"); rid == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	if hsts := w.Header().Get("Strict-Transport-Security"); !strings.HasPrefix(hsts, "max-age=3600") {
		t.Fatalf("HSTS=%q", hsts)
	}
}

func TestRegisterRoutes_IdempotentReviewReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	db := newTestDB(t)
	seedPlatform(t, db, "Bubble", "Web-based", "$25-299/mo")
	RegisterRoutes(r, db, testConfig("/api/v1"))

	post := func(key string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]any{"user_name": "ann", "rating": 5, "comment": "great"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/platforms/Bubble/reviews", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if key != "" {
			req.Header.Set(middleware.HeaderIdempotencyKey, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := post("key-hit"); w.Code != http.StatusCreated {
		t.Fatalf("first POST = %d body=%s", w.Code, w.Body.String())
	}
	w := post("key-hit")
	if w.Code != http.StatusOK || w.Header().Get("Idempotency-Replayed") != "true" {
		t.Fatalf("replay POST = %d replayed=%q", w.Code, w.Header().Get("Idempotency-Replayed"))
	}

	// Invalid key is rejected by the validator before the handler runs.
	w = post("bad key!")
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "bad_idempotency_key") {
		t.Fatalf("bad key POST = %d body=%s", w.Code, w.Body.String())
	}

	var n int64
	if err := db.Model(&domain.Review{}).Count(&n).Error; err != nil || n != 1 {
		t.Fatalf("reviews stored=%d err=%v", n, err)
	}
}

func Test_idempotencyLookup(t *testing.T) {
	db := newTestDB(t)
	p := seedPlatform(t, db, "Bubble", "Web-based", "$25-299/mo")
	ctx := context.Background()
	now := time.Now().UTC()
	lookup := idempotencyLookup(db)

	// unknown platform → miss, no error
	if hit, err := lookup(ctx, "Retool", "k", now); hit || err != nil {
		t.Fatalf("unknown platform: hit=%v err=%v", hit, err)
	}
	// known platform, no record → miss
	if hit, err := lookup(ctx, "Bubble", "k", now); hit || err != nil {
		t.Fatalf("miss: hit=%v err=%v", hit, err)
	}

	rv, err := repo.CreateReview(ctx, db, p.ID, "ann", 4, "ok")
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if _, err := repo.CreateIdempotency(ctx, db, p.ID, "k", rv.ID, http.StatusCreated, time.Hour); err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	if hit, err := lookup(ctx, "Bubble", "k", now); !hit || err != nil {
		t.Fatalf("hit: hit=%v err=%v", hit, err)
	}
	// expired → miss
	if hit, _ := lookup(ctx, "Bubble", "k", now.Add(2*time.Hour)); hit {
		t.Fatalf("expired record should miss")
	}

	// closed DB → miss, no error
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()
	if hit, err := lookup(ctx, "Bubble", "k", now); hit || err != nil {
		t.Fatalf("closed db: hit=%v err=%v", hit, err)
	}
}
