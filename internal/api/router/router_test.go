package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yasheenyash33/training-tracker-Dash/config"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/api/handler"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/service"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/jwt"
)

// newEngine builds the router over nil services; only requests rejected
// before a handler runs are safe to send.
func newEngine(t *testing.T) (http.Handler, *jwt.Manager) {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{BodyLimit: 1 << 20, CORS: config.CORSConfig{AllowOrigins: []string{"*"}}},
		Auth:   config.AuthConfig{JWTSecret: "router-test-secret-0123", AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour},
		PasswordReset: config.PasswordResetConfig{
			RateLimit: 5, RateWindow: time.Minute,
		},
	}
	mgr := jwt.NewManager(&cfg.Auth)
	h := handler.NewHandler(&service.Service{})
	return Setup(cfg, h, mgr, nil, nil, zap.NewNop()), mgr
}

func do(t *testing.T, engine http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestPublicRoutes(t *testing.T) {
	engine, _ := newEngine(t)

	assert.Equal(t, http.StatusOK, do(t, engine, "GET", "/", "").Code)
	assert.Equal(t, http.StatusOK, do(t, engine, "GET", "/health", "").Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine, _ := newEngine(t)

	paths := []string{
		"/api/auth/user", "/api/users", "/api/programs", "/api/program-topics",
		"/api/batches", "/api/batch-trainers", "/api/batch-trainees",
		"/api/designations", "/api/designation-programs", "/api/trainee-designations",
		"/api/progress-records", "/api/progress-records/export", "/api/classes",
		"/api/audit-logs", "/api/batches/1/calendar",
	}
	for _, p := range paths {
		assert.Equal(t, http.StatusUnauthorized, do(t, engine, "GET", p, "").Code, p)
	}
}

func TestRoleGates(t *testing.T) {
	engine, mgr := newEngine(t)

	trainee, err := mgr.GenerateAccessToken(3, "trainee", false)
	require.NoError(t, err)
	trainer, err := mgr.GenerateAccessToken(2, "trainer", false)
	require.NoError(t, err)

	tests := []struct {
		token  string
		method string
		path   string
	}{
		{trainee, "GET", "/api/users"},
		{trainee, "POST", "/api/programs"},
		{trainee, "GET", "/api/batches"},
		{trainee, "DELETE", "/api/classes/1"},
		{trainee, "GET", "/api/progress-records/export"},
		{trainee, "GET", "/api/batches/1/calendar"},
		{trainer, "GET", "/api/users/1"},
		{trainer, "PATCH", "/api/designations/1"},
		{trainer, "GET", "/api/audit-logs"},
	}
	for _, tt := range tests {
		w := do(t, engine, tt.method, tt.path, tt.token)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestAuditLogsAreReadOnly(t *testing.T) {
	engine, mgr := newEngine(t)

	admin, err := mgr.GenerateAccessToken(1, "admin", true)
	require.NoError(t, err)

	for _, method := range []string{"POST", "PUT", "PATCH", "DELETE"} {
		w := do(t, engine, method, "/api/audit-logs/1", admin)
		assert.Equal(t, http.StatusNotFound, w.Code, method)
	}
}
