package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestGetIdempotencyKey_IsReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	if k, ok := GetIdempotencyKey(c); k != "" || ok {
		t.Fatalf("key present before validation")
	}
	if IsReplay(c) {
		t.Fatalf("replay before validation")
	}

	c.Set(ctxKeyIdemKey, 123)
	if _, ok := GetIdempotencyKey(c); ok {
		t.Fatalf("non-string key reported present")
	}
	c.Set(ctxKeyIdemKey, "k-1")
	if k, ok := GetIdempotencyKey(c); !ok || k != "k-1" {
		t.Fatalf("key=%q ok=%v", k, ok)
	}

	c.Set(ctxKeyIdemReplay, true)
	if !IsReplay(c) {
		t.Fatalf("replay flag ignored")
	}
	c.Set(ctxKeyIdemReplay, "yes")
	if IsReplay(c) {
		t.Fatalf("non-bool replay flag read as true")
	}
}

// observed is what the review handler saw after the validator ran.
type observed struct {
	ran     bool
	key     string
	replay  bool
	bypass  bool
	lookups []string
}

func TestIdempotencyValidator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fixed := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	stored := map[string]bool{"Bubble|seen": true, "Power Apps|k-9": true}

	cases := []struct {
		name     string
		opts     IdempotencyOptions
		method   string
		path     string
		key      string
		failLook bool
		status   int
		want     observed
	}{
		{
			name: "no header", method: http.MethodPost, path: "/platforms/Bubble/reviews",
			status: http.StatusCreated, want: observed{ran: true},
		},
		{
			name: "reads ignore the header", method: http.MethodGet, path: "/platforms/Bubble/reviews",
			key: "bad key!", status: http.StatusCreated, want: observed{ran: true},
		},
		{
			name: "fresh key", method: http.MethodPost, path: "/platforms/Bubble/reviews",
			key: "new-1", status: http.StatusCreated,
			want: observed{ran: true, key: "new-1", lookups: []string{"Bubble|new-1"}},
		},
		{
			name: "stored key replays and bypasses", method: http.MethodPost, path: "/platforms/Bubble/reviews",
			key: "seen", status: http.StatusCreated,
			want: observed{ran: true, key: "seen", replay: true, bypass: true, lookups: []string{"Bubble|seen"}},
		},
		{
			name: "escaped platform name", method: http.MethodPost, path: "/platforms/Power%20Apps/reviews",
			key: "k-9", status: http.StatusCreated,
			want: observed{ran: true, key: "k-9", replay: true, bypass: true, lookups: []string{"Power Apps|k-9"}},
		},
		{
			name: "keys are scoped per platform", method: http.MethodPost, path: "/platforms/Webflow/reviews",
			key: "seen", status: http.StatusCreated,
			want: observed{ran: true, key: "seen", lookups: []string{"Webflow|seen"}},
		},
		{
			name: "lookup error is a miss", method: http.MethodPost, path: "/platforms/Bubble/reviews",
			key: "seen", failLook: true, status: http.StatusCreated,
			want: observed{ran: true, key: "seen", lookups: []string{"Bubble|seen"}},
		},
		{
			name: "no platform param skips lookup", method: http.MethodPost, path: "/import",
			key: "k", status: http.StatusCreated, want: observed{ran: true, key: "k"},
		},
		{
			name: "too long", opts: IdempotencyOptions{MaxLen: 5}, method: http.MethodPost,
			path: "/platforms/Bubble/reviews", key: "abcdef", status: http.StatusBadRequest,
		},
		{
			name: "default cap is 128", method: http.MethodPost, path: "/platforms/Bubble/reviews",
			key: strings.Repeat("a", 129), status: http.StatusBadRequest,
		},
		{
			name: "default pattern", method: http.MethodPost, path: "/platforms/Bubble/reviews",
			key: "bad key!", status: http.StatusBadRequest,
		},
		{
			name: "custom pattern", opts: IdempotencyOptions{Pattern: regexp.MustCompile(`^[0-9]+$`)},
			method: http.MethodPost, path: "/platforms/Bubble/reviews", key: "abc123", status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got observed
			lookup := func(_ context.Context, platform, key string, now time.Time) (bool, error) {
				if !now.Equal(fixed) {
					t.Errorf("lookup clock %v want %v", now, fixed)
				}
				got.lookups = append(got.lookups, platform+"|"+key)
				if tc.failLook {
					return true, errors.New("store down")
				}
				return stored[platform+"|"+key], nil
			}
			opts := tc.opts
			opts.Now = func() time.Time { return fixed }

			r := gin.New()
			r.Use(IdempotencyValidator(opts, lookup))
			h := func(c *gin.Context) {
				got.ran = true
				got.key, _ = GetIdempotencyKey(c)
				got.replay = IsReplay(c)
				got.bypass = IsRateBypass(c)
				c.Status(http.StatusCreated)
			}
			r.POST("/platforms/:name/reviews", h)
			r.GET("/platforms/:name/reviews", h)
			r.POST("/import", h)

			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.key != "" {
				req.Header.Set(HeaderIdempotencyKey, tc.key)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("status %d want %d", w.Code, tc.status)
			}
			if tc.status == http.StatusBadRequest {
				var body map[string]any
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["code"] != "bad_idempotency_key" {
					t.Fatalf("body %s err=%v", w.Body.String(), err)
				}
				if got.ran || len(got.lookups) > 0 {
					t.Fatalf("rejected request reached handler or lookup: %+v", got)
				}
				return
			}
			if got.ran != tc.want.ran || got.key != tc.want.key || got.replay != tc.want.replay || got.bypass != tc.want.bypass {
				t.Fatalf("observed %+v want %+v", got, tc.want)
			}
			if strings.Join(got.lookups, ",") != strings.Join(tc.want.lookups, ",") {
				t.Fatalf("lookups %v want %v", got.lookups, tc.want.lookups)
			}
		})
	}
}

func TestIdempotencyValidator_NilLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdempotencyValidator(IdempotencyOptions{Param: "platform"}, nil))
	r.POST("/x/:platform", func(c *gin.Context) {
		if k, ok := GetIdempotencyKey(c); !ok || k != "abc-123" || IsReplay(c) {
			t.Fatalf("key=%q ok=%v replay=%v", k, ok, IsReplay(c))
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/x/Bubble", nil)
	req.Header.Set(HeaderIdempotencyKey, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
}
