package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Black-And-White-Club/roomly/app/observability"
	"github.com/Black-And-White-Club/roomly/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTP:     config.HTTPConfig{Addr: ":0", AllowedOrigins: []string{"https://app.example.com"}},
		JWT:      config.JWTConfig{Secret: "test-secret", DefaultTTL: config.DefaultJWTTTL},
		Auth:     config.AuthConfig{BotAdminToken: "bot-secret", RatePerSecond: 100, RateBurst: 100},
		Calendar: config.CalendarConfig{Timezone: "UTC", MaxOccurrences: 100},
	}
}

func testObservability() *observability.Observability {
	reg := prometheus.NewRegistry()
	return &observability.Observability{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracer:   noop.NewTracerProvider().Tracer("test"),
		Metrics:  observability.NewHTTPMetrics(reg),
		Registry: reg,
	}
}

// newTestApp wires the modules without a database. Only routes that fail
// before reaching a repository can be exercised.
func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	app, err := NewAppWithDB(cfg, testObservability(), nil)
	require.NoError(t, err)
	return app
}

func TestRouter_Guards(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		headers  map[string]string
		wantCode int
		wantBody string
	}{
		{
			name:     "health",
			method:   http.MethodGet,
			path:     "/healthz",
			wantCode: http.StatusOK,
			wantBody: `{"status":"ok"}`,
		},
		{
			name:     "user route without token",
			method:   http.MethodGet,
			path:     "/api/clubs/my",
			wantCode: http.StatusUnauthorized,
			wantBody: `{"detail":"missing token"}`,
		},
		{
			name:     "user route with bad token",
			method:   http.MethodGet,
			path:     "/api/calendar/events",
			headers:  map[string]string{"Authorization": "Bearer not-a-jwt"},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"detail":"invalid token"}`,
		},
		{
			name:     "admin route without token",
			method:   http.MethodGet,
			path:     "/api/admin/users",
			wantCode: http.StatusUnauthorized,
			wantBody: `{"detail":"missing token"}`,
		},
		{
			name:     "bot route without admin token",
			method:   http.MethodPost,
			path:     "/api/bot/upsert-user",
			wantCode: http.StatusUnauthorized,
			wantBody: `{"detail":"invalid admin token"}`,
		},
		{
			name:     "bot route with wrong admin token",
			method:   http.MethodPost,
			path:     "/api/bot/set-email",
			headers:  map[string]string{"X-Admin-Token": "nope"},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"detail":"invalid admin token"}`,
		},
		{
			name:     "bot route passes guard",
			method:   http.MethodPost,
			path:     "/api/bot/assign-role",
			headers:  map[string]string{"X-Admin-Token": "bot-secret"},
			wantCode: http.StatusBadRequest,
			wantBody: `{"detail":"request body required"}`,
		},
		{
			name:     "telegram login without body",
			method:   http.MethodPost,
			path:     "/api/auth/telegram",
			wantCode: http.StatusBadRequest,
			wantBody: `{"detail":"request body required"}`,
		},
		{
			name:     "unknown route",
			method:   http.MethodGet,
			path:     "/api/nope",
			wantCode: http.StatusNotFound,
		},
	}

	handler := newTestApp(t, testConfig()).Router()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestRouter_TelegramLoginNotConfigured(t *testing.T) {
	handler := newTestApp(t, testConfig()).Router()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/telegram", strings.NewReader(`{"initData":"hash=abc"}`)))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"detail":"BOT_TOKEN is not configured"}`, rr.Body.String())
}

func TestRouter_BotAdminTokenNotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.BotAdminToken = ""
	handler := newTestApp(t, cfg).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/bot/create-club", strings.NewReader(`{"name":"Chess"}`))
	req.Header.Set("X-Admin-Token", "anything")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"detail":"BOT_ADMIN_TOKEN is not configured"}`, rr.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	handler := newTestApp(t, testConfig()).Router()

	req := httptest.NewRequest(http.MethodOptions, "/api/admin/rooms", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "X-Admin-Token")
}

func TestRouter_StaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Roomly</h1>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "script.js"), []byte("console.log(1)"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "logo.svg"), []byte("<svg/>"), 0o600))

	cfg := testConfig()
	cfg.HTTP.StaticDir = dir
	handler := newTestApp(t, cfg).Router()

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{path: "/", wantCode: http.StatusOK, wantBody: "<h1>Roomly</h1>"},
		{path: "/script.js", wantCode: http.StatusOK, wantBody: "console.log(1)"},
		{path: "/assets/logo.svg", wantCode: http.StatusOK, wantBody: "<svg/>"},
		{path: "/style.css", wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestRouter_RecordsMetrics(t *testing.T) {
	app := newTestApp(t, testConfig())
	handler := app.Router()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	families, err := app.Observability.Registry.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "roomly_http_requests_total")
	assert.Contains(t, names, "roomly_http_request_duration_seconds")
}

func TestNewAppWithDB_InvalidTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Calendar.Timezone = "Mars/Olympus"
	_, err := NewAppWithDB(cfg, testObservability(), nil)
	assert.Error(t, err)
}
