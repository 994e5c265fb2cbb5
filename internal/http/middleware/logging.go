// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides request correlation, access logging and panic recovery:
//
//   - RequestID propagates or generates the X-Request-ID header.
//   - Logger emits one structured zerolog line per request and stashes a
//     request-scoped logger in the Gin context (see LoggerFrom). Sensitive
//     headers are masked and e-mail addresses in the query string are scrubbed.
//   - Recovery turns panics into the standard JSON 500 envelope.
package middleware

import (
	"net/http"
	"regexp"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"

	// maxQueryLogLength caps the logged query string; filter URLs can be long.
	maxQueryLogLength = 2048
)

// LogOptions configures Logger.
type LogOptions struct {
	// MaskHeaders lists extra request headers whose values are replaced with
	// "[REDACTED]". Authorization and Cookie are always masked.
	MaskHeaders []string
	// LogHeaders adds the (masked) request headers to each access line.
	LogHeaders bool
}

var emailRE = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+(@|%40)[a-z0-9.\-]+\.[a-z]{2,}`)

// RequestID ensures each request carries a correlation id. An incoming
// X-Request-ID is kept; otherwise a UUID is generated. The id is stored in the
// context and echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// Logger returns the access-log middleware. Severity follows the outcome:
// gin errors and 5xx log at error, 4xx at warn, everything else at info.
func Logger(opts ...LogOptions) gin.HandlerFunc {
	var o LogOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	masked := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}
	for _, h := range o.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			masked[h] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		rid, _ := c.Get(requestIDKey)
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		lc := log.With().
			Str("request_id", asString(rid)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("query", scrubQuery(truncate(c.Request.URL.RawQuery, maxQueryLogLength))).
			Int64("bytes_in", c.Request.ContentLength)
		if name := c.Param("name"); name != "" {
			lc = lc.Str("platform", name)
		}
		if o.LogHeaders {
			lc = lc.Interface("headers", maskHeaders(c.Request.Header, masked))
		}
		l := lc.Logger()

		c.Set("logger", &l)

		c.Next()

		ev := l.With().
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Int("bytes_out", c.Writer.Size()).
			Logger()

		status := c.Writer.Status()
		switch {
		case len(c.Errors) > 0:
			ev.Error().Str("errors", c.Errors.String()).Msg("request")
		case status >= 500:
			ev.Error().Msg("request")
		case status >= 400:
			ev.Warn().Msg("request")
		default:
			ev.Info().Msg("request")
		}
	}
}

// Recovery recovers from panics, logs the stack and, if nothing has been
// written yet, responds with the JSON 500 envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				rid, _ := c.Get(requestIDKey)
				log.Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("request_id", asString(rid)).
					Msg("panic recovered")

				if !c.Writer.Written() {
					c.Header("Content-Type", "application/json")
					c.Header(requestIDHeader, asString(rid))
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
						"request_id": asString(rid),
						"code":       "internal_error",
						"message":    "internal server error",
					})
					return
				}
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger stored by Logger, or a child of
// the global logger when none is present.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get("logger"); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

func maskHeaders(h http.Header, masked map[string]struct{}) map[string]string {
	out := make(map[string]string, len(h))
	for k, vv := range h {
		if _, ok := masked[strings.ToLower(k)]; ok {
			out[k] = "[REDACTED]"
			continue
		}
		out[k] = strings.Join(vv, ", ")
	}
	return out
}

func scrubQuery(q string) string {
	if q == "" {
		return q
	}
	return emailRE.ReplaceAllString(q, "[REDACTED:email]")
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
