package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/metrics"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/service"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID    = "7d0f4b9c-user"
	testToken     = "valid-token"
	testLogID     = "0192f0c4-7d1a-7c3e-9a55-3f1b2c4d5e6f"
	testItemID    = "0192f0c4-7d1a-7c3e-9a55-3f1b2c4d5e70"
	testServingID = "0192f0c4-7d1a-7c3e-9a55-3f1b2c4d5e71"
)

// testServices returns services whose auth accepts testToken only.
func testServices() *service.Services {
	return &service.Services{
		AppInfoService: &mockAppInfoService{version: "test-version"},
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, token string) (models.Token, error) {
				if token != testToken {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return models.Token{UserID: testUserID}, nil
			},
		},
		PackagingLogService: &mockPackagingLogService{},
		AnalyticsService:    &mockAnalyticsService{},
		AlternativesService: &mockAlternativesService{},
		FoodItemService:     &mockFoodItemService{},
		MealWasteService:    &mockMealWasteService{},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	h := NewHandler(services, packaging.DefaultTaxonomy(), nil, logger.Nop())
	h.now = func() time.Time { return time.Date(2024, 3, 12, 23, 30, 0, 0, time.UTC) }
	return h
}

// serve runs req through the full router with a valid bearer token.
func serve(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := testServices()
	log := logger.Nop()

	h := NewHandler(svcs, packaging.DefaultTaxonomy(), nil, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.NotNil(t, h.now)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/packaging/types"},
		{http.MethodGet, "/api/packaging/logs"},
		{http.MethodGet, "/api/packaging/logs/by-day"},
		{http.MethodPost, "/api/packaging/logs"},
		{http.MethodPut, "/api/packaging/logs/" + testLogID},
		{http.MethodDelete, "/api/packaging/logs/" + testLogID},
		{http.MethodGet, "/api/packaging/summary"},
		{http.MethodGet, "/api/packaging/scoreboard"},
		{http.MethodGet, "/api/packaging/insights"},
		{http.MethodPost, "/api/packaging/alternatives"},
		{http.MethodGet, "/api/inventory/items"},
		{http.MethodPost, "/api/inventory/items"},
		{http.MethodDelete, "/api/inventory/items/" + testItemID},
		{http.MethodGet, "/api/inventory/alerts"},
		{http.MethodGet, "/api/meals"},
		{http.MethodPost, "/api/meals"},
		{http.MethodGet, "/api/meals/choices"},
		{http.MethodPut, "/api/meals/" + testServingID + "/waste"},
		{http.MethodDelete, "/api/meals/" + testServingID},
		{http.MethodGet, "/api/meals/summary"},
		{http.MethodGet, "/api/meals/insights"},
	}

	router := newTestHandler(t, testServices()).Init()

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(rt.method, rt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_VersionIsPublic(t *testing.T) {
	router := newTestHandler(t, testServices()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestInit_VersionAsJSON(t *testing.T) {
	router := newTestHandler(t, testServices()).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"test-version"}`, rec.Body.String())
}

func TestInit_UnsupportedMethodIsNotFound(t *testing.T) {
	router := newTestHandler(t, testServices()).Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/version"},
		{http.MethodPatch, "/api/packaging/logs"},
		{http.MethodGet, "/api/packaging/logs/" + testLogID},
		{http.MethodGet, "/api/packaging/alternatives"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+testToken)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_UnknownPathIsNotFound(t *testing.T) {
	router := newTestHandler(t, testServices()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_MetricsEndpoint(t *testing.T) {
	m, err := metrics.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	h := NewHandler(testServices(), packaging.DefaultTaxonomy(), m, logger.Nop())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `waste_tracker_http_requests_total{method="GET",route="/api/version",status_code="200"} 1`)
}

func TestInit_MetricsEndpointAbsentWithoutMetrics(t *testing.T) {
	router := newTestHandler(t, testServices()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
