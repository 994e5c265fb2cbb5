package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// clearEnv unsets every key Load reads so ambient variables cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "READ_TIMEOUT", "READ_HEADER_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT",
		"MAX_HEADER_BYTES", "GIN_MODE", "LOG_LEVEL", "LOG_PRETTY", "SWAGGER_ENABLED",
		"API_BASE_PATH", "DATABASE_URL", "DB_PATH", "SEED_PATH", "SEED_ON_START",
		"REVIEW_WINDOW", "REVIEW_TZ", "RATE_RPS", "RATE_BURST", "CORS_ALLOWED_ORIGINS",
		"ENABLE_HSTS", "HSTS_MAX_AGE", "IDEMPOTENCY_TTL", "OTEL_ENABLED",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE", "OTEL_SERVICE_NAME",
		"OTEL_TRACES_SAMPLER_ARG",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		Port:              "8080",
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
		GinMode:           "release",
		LogLevel:          "info",
		APIBasePath:       "/api/v1",
		DBPath:            "platforms.db",
		SeedOnStart:       true,
		ReviewWindow:      30 * 24 * time.Hour,
		ReviewTimezone:    "Local",
		RateRPS:           5,
		RateBurst:         10,
		Security:          SecurityConfig{HSTSMaxAge: 180 * 24 * time.Hour},
		IdempotencyTTL:    24 * time.Hour,
		OTEL: OTELConfig{
			Endpoint:    "localhost:4317",
			Insecure:    true,
			ServiceName: "platform-dashboard",
			SampleRatio: 1,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("defaults (-want +got):\n%s", diff)
	}
	if got.DBDriver() != "sqlite" || got.Location() != time.Local {
		t.Fatalf("driver=%s loc=%v", got.DBDriver(), got.Location())
	}
}

func TestLoad_OverridesAndNormalization(t *testing.T) {
	clearEnv(t)
	for k, v := range map[string]string{
		"PORT":                        "8088",
		"READ_TIMEOUT":                "2s",
		"READ_HEADER_TIMEOUT":         "1s",
		"WRITE_TIMEOUT":               "3s",
		"IDLE_TIMEOUT":                "4s",
		"MAX_HEADER_BYTES":            " 8192 ",
		"GIN_MODE":                    "weird",
		"LOG_LEVEL":                   "WARNING",
		"LOG_PRETTY":                  "yes",
		"SWAGGER_ENABLED":             "on",
		"API_BASE_PATH":               "dash/v2//",
		"DATABASE_URL":                "postgres://u:p@db:5432/platforms?sslmode=disable",
		"DB_PATH":                     "ignored.db",
		"SEED_PATH":                   "catalog.yaml",
		"SEED_ON_START":               "off",
		"REVIEW_WINDOW":               "168h",
		"REVIEW_TZ":                   "UTC",
		"RATE_RPS":                    "0.5",
		"RATE_BURST":                  "3",
		"CORS_ALLOWED_ORIGINS":        " https://a.com , , http://b ",
		"ENABLE_HSTS":                 "TRUE",
		"HSTS_MAX_AGE":                "24h",
		"IDEMPOTENCY_TTL":             "48h",
		"OTEL_ENABLED":                "1",
		"OTEL_EXPORTER_OTLP_ENDPOINT": "otel:4317",
		"OTEL_EXPORTER_OTLP_INSECURE": "0",
		"OTEL_SERVICE_NAME":           "svc",
		"OTEL_TRACES_SAMPLER_ARG":     "0.25",
	} {
		t.Setenv(k, v)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		Port:              "8088",
		ReadTimeout:       2 * time.Second,
		ReadHeaderTimeout: time.Second,
		WriteTimeout:      3 * time.Second,
		IdleTimeout:       4 * time.Second,
		MaxHeaderBytes:    8192,
		GinMode:           "release",
		LogLevel:          "warn",
		LogPretty:         true,
		SwaggerEnabled:    true,
		APIBasePath:       "/dash/v2",
		DatabaseURL:       "postgres://u:p@db:5432/platforms?sslmode=disable",
		DBPath:            "ignored.db",
		SeedPath:          "catalog.yaml",
		ReviewWindow:      7 * 24 * time.Hour,
		ReviewTimezone:    "UTC",
		RateRPS:           0.5,
		RateBurst:         3,
		CORS:              CORSConfig{AllowedOrigins: []string{"https://a.com", "http://b"}},
		Security:          SecurityConfig{EnableHSTS: true, HSTSMaxAge: 24 * time.Hour},
		IdempotencyTTL:    48 * time.Hour,
		OTEL: OTELConfig{
			Enabled:     true,
			Endpoint:    "otel:4317",
			ServiceName: "svc",
			SampleRatio: 0.25,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
	if got.DBDriver() != "postgres" || got.Location() != time.UTC {
		t.Fatalf("driver=%s loc=%v", got.DBDriver(), got.Location())
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want []string
	}{
		{"log level", map[string]string{"LOG_LEVEL": "verbose"}, []string{"LOG_LEVEL must be one of"}},
		{"blank port", map[string]string{"PORT": "   "}, []string{"PORT must not be empty"}},
		{"zero timeout", map[string]string{"READ_TIMEOUT": "0s"}, []string{"timeouts must be positive"}},
		{"header bytes", map[string]string{"MAX_HEADER_BYTES": "0"}, []string{"MAX_HEADER_BYTES must be > 0"}},
		{"blank sqlite path", map[string]string{"DB_PATH": "   "}, []string{"DB_PATH must not be empty"}},
		{"window", map[string]string{"REVIEW_WINDOW": "-1h"}, []string{"REVIEW_WINDOW must be > 0"}},
		{"timezone", map[string]string{"REVIEW_TZ": "Mars/Olympus_Mons"}, []string{"REVIEW_TZ"}},
		{"negative rps", map[string]string{"RATE_RPS": "-1"}, []string{"RATE_RPS must be >= 0"}},
		{"burst", map[string]string{"RATE_BURST": "0"}, []string{"RATE_BURST must be >= 1"}},
		{"hsts age", map[string]string{"HSTS_MAX_AGE": "-1s"}, []string{"HSTS_MAX_AGE must be >= 0"}},
		{"idempotency ttl", map[string]string{"IDEMPOTENCY_TTL": "0s"}, []string{"IDEMPOTENCY_TTL must be > 0"}},
		{"sample ratio", map[string]string{"OTEL_TRACES_SAMPLER_ARG": "1.5"}, []string{"OTEL_TRACES_SAMPLER_ARG must be in [0,1]"}},
		{"malformed number", map[string]string{"RATE_RPS": "fast"}, []string{`RATE_RPS="fast": not a number`}},
		{"malformed integer", map[string]string{"RATE_BURST": "ten"}, []string{`RATE_BURST="ten": not an integer`}},
		{"malformed bool", map[string]string{"SEED_ON_START": "maybe"}, []string{`SEED_ON_START="maybe": not a boolean`}},
		{"malformed duration", map[string]string{"REVIEW_WINDOW": "30 days"}, []string{`REVIEW_WINDOW="30 days": not a duration`}},
		{
			"all problems reported together",
			map[string]string{"LOG_LEVEL": "loud", "RATE_BURST": "0", "IDLE_TIMEOUT": "soon"},
			[]string{"LOG_LEVEL", "RATE_BURST must be >= 1", `IDLE_TIMEOUT="soon"`},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil {
				t.Fatalf("expected an error")
			}
			for _, w := range tc.want {
				if !strings.Contains(err.Error(), w) {
					t.Fatalf("error %q does not mention %q", err, w)
				}
			}
		})
	}
}

func TestLoad_BlankSQLitePathAllowedWithPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "   ")
	t.Setenv("DATABASE_URL", "postgres://localhost/platforms")
	if _, err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestMustLoad(t *testing.T) {
	clearEnv(t)
	if cfg := MustLoad(); cfg.Port != "8080" {
		t.Fatalf("MustLoad port=%q", cfg.Port)
	}

	t.Setenv("LOG_LEVEL", "verbose")
	defer func() {
		if recover() == nil {
			t.Fatalf("MustLoad should panic on invalid config")
		}
	}()
	MustLoad()
}

func TestLocation(t *testing.T) {
	for tz, want := range map[string]*time.Location{
		"":           time.Local,
		"local":      time.Local,
		"UTC":        time.UTC,
		"Nowhere/At": time.Local,
	} {
		if got := (Config{ReviewTimezone: tz}).Location(); got != want {
			t.Fatalf("Location(%q)=%v want %v", tz, got, want)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "test.env")
	if err := os.WriteFile(p, []byte("PD_DOTENV_NEW=from-file\nPD_DOTENV_SET=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("PD_DOTENV_SET", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("PD_DOTENV_NEW") })

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), p); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("PD_DOTENV_NEW"); got != "from-file" {
		t.Fatalf("PD_DOTENV_NEW = %q; want from-file", got)
	}
	if got := os.Getenv("PD_DOTENV_SET"); got != "from-env" {
		t.Fatalf("PD_DOTENV_SET = %q; want from-env (no override)", got)
	}
}

func Test_splitCSV_normalizeBasePath(t *testing.T) {
	if out := splitCSV(""); out != nil {
		t.Fatalf("splitCSV(\"\") = %#v", out)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, splitCSV(" a, ,b ,  c  ,")); diff != "" {
		t.Fatalf("splitCSV (-want +got):\n%s", diff)
	}
	for in, want := range map[string]string{
		"":         "/",
		" / ":      "/",
		"v1":       "/v1",
		"/v1/":     "/v1",
		"api/v1//": "/api/v1",
	} {
		if got := normalizeBasePath(in); got != want {
			t.Fatalf("normalizeBasePath(%q)=%q want %q", in, got, want)
		}
	}
}
