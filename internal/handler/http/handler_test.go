package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/service"
	"github.com/MKhiriev/resume-gate/internal/utils"
	"github.com/MKhiriev/resume-gate/models"
)

// ─────────────────────────────────────────────
// fakes
// ─────────────────────────────────────────────

type fakeDownloadService struct {
	link  models.DownloadLink
	err   error
	calls int
	got   models.DownloadRequest
}

func (f *fakeDownloadService) RequestDownload(_ context.Context, req models.DownloadRequest) (models.DownloadLink, error) {
	f.calls++
	f.got = req
	return f.link, f.err
}

type fakeHealthService struct {
	readinessErr error
}

func (f *fakeHealthService) Liveness(context.Context) error { return nil }

func (f *fakeHealthService) Readiness(context.Context) error { return f.readinessErr }

type fakeAuditService struct {
	logs     []models.DownloadLog
	err      error
	filter   models.DownloadLogFilter
	operator string
}

func (f *fakeAuditService) ListDownloadLogs(ctx context.Context, filter models.DownloadLogFilter) ([]models.DownloadLog, error) {
	f.filter = filter
	f.operator, _ = utils.GetOperatorFromContext(ctx)
	return f.logs, f.err
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

const (
	testSignKey = "admin-sign-key"
	testIssuer  = "resume-gate"
)

type testDeps struct {
	download *fakeDownloadService
	health   *fakeHealthService
	audit    *fakeAuditService
}

// newTestRouter builds the full router with fakes behind every service.
// Admin routes are enabled.
func newTestRouter(t *testing.T, cfg config.Server) (http.Handler, *testDeps) {
	t.Helper()

	deps := &testDeps{
		download: &fakeDownloadService{},
		health:   &fakeHealthService{},
		audit:    &fakeAuditService{},
	}

	svcs := &service.Services{
		DownloadService: deps.download,
		HealthService:   deps.health,
		AuditService:    deps.audit,
		AuthService:     service.NewAuthService(config.App{AdminTokenSignKey: testSignKey, AdminTokenIssuer: testIssuer}, logger.Nop()),
		AppInfoService:  &mockAppInfoService{version: "test-version"},
	}

	return NewHandler(svcs, cfg, logger.Nop()).Init(), deps
}

func adminToken(t *testing.T) string {
	t.Helper()

	token, err := utils.GenerateAdminToken(testIssuer, "alice", time.Hour, testSignKey)
	require.NoError(t, err)
	return token.SignedString
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler / Init
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	cfg := config.Server{TrustProxyHeaders: true}

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.True(t, h.cfg.TrustProxyHeaders)
}

func TestInit_RegistersRoutes(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/api/resume/download"},
		{http.MethodGet, "/api/version/"},
		{http.MethodGet, "/api/admin/downloads"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(router, httptest.NewRequest(tt.method, tt.path, nil))
			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_AdminRouteOnlyWhenEnabled(t *testing.T) {
	svcs := &service.Services{
		AuthService:    service.NewAuthService(config.App{AdminTokenIssuer: testIssuer}, logger.Nop()),
		AppInfoService: &mockAppInfoService{version: "v"},
	}
	router := NewHandler(svcs, config.Server{}, logger.Nop()).Init()

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/admin/downloads", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_UnsupportedMethodReturns404(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{})

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		rec := serve(router, httptest.NewRequest(method, "/api/resume/download", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, method)
	}
	assert.Zero(t, deps.download.calls)
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{})

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/resume/upload", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_MetricsExposeRequests(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{})

	serve(router, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	rec := serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `resume_gate_http_requests_total{method="GET",path="/health/live",status="200"}`)
}
