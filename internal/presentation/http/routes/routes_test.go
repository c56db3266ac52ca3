package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sangkips/cospharm-api/internal/application/service"
	"github.com/sangkips/cospharm-api/internal/config"
	"github.com/sangkips/cospharm-api/internal/presentation/http/handler"
	"github.com/sangkips/cospharm-api/internal/presentation/http/middleware"
	"github.com/sangkips/cospharm-api/pkg/clock"
	"github.com/sangkips/cospharm-api/pkg/metrics"
	"github.com/sangkips/cospharm-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *utils.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clk := clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	jwt := utils.NewJWTManager("secret", "cospharm", time.Hour)
	m := metrics.New("routes_test")
	log := zerolog.Nop()

	pricingService := service.NewPricingService(nil, nil, nil, nil, clk, service.PricingOptions{}, m, log)
	h := &Handlers{
		Pricing:    handler.NewPricingHandler(pricingService),
		Product:    handler.NewProductHandler(service.NewProductService(nil)),
		Customer:   handler.NewCustomerHandler(service.NewCustomerService(nil)),
		Promotion:  handler.NewPromotionHandler(service.NewPromotionService(nil)),
		BulkUpload: handler.NewBulkUploadHandler(service.NewBulkUploadService(nil, nil, clk, m, log), 1<<20),
	}

	rl := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	t.Cleanup(rl.Stop)

	cfg := &config.Config{App: config.AppConfig{Name: "cospharm-api"}}
	return Setup(h, &Deps{
		JWTManager:  jwt,
		Cfg:         cfg,
		RateLimiter: rl,
		Metrics:     m,
		Clock:       clk,
		Log:         log,
	}), jwt
}

func TestHealthAndMetrics(t *testing.T) {
	r, _ := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cospharm-api")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "routes_test_http_request_duration_seconds")
}

func TestGuardedRoutes(t *testing.T) {
	r, jwt := newRouter(t)

	auditor, err := jwt.GenerateAccessToken(uuid.New(), "auditor@cospharm.test", nil, []string{middleware.PermissionViewAudits})
	require.NoError(t, err)

	cases := []struct {
		method string
		path   string
		token  string
		status int
	}{
		{"GET", "/api/v1/pricing/audits", "", http.StatusUnauthorized},
		{"GET", "/api/v1/customers", "", http.StatusUnauthorized},
		{"POST", "/api/v1/products", "", http.StatusUnauthorized},
		{"GET", "/api/v1/bulk-uploads", "", http.StatusUnauthorized},
		{"POST", "/api/v1/products", auditor, http.StatusForbidden},
		{"DELETE", "/api/v1/promotions/p1", auditor, http.StatusForbidden},
		{"GET", "/api/v1/customers", auditor, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestPreviewIsPublic(t *testing.T) {
	r, _ := newRouter(t)

	body := bytes.NewBufferString(`{"base_price":"N$89.00","product_discount":"40"}`)
	req := httptest.NewRequest("POST", "/api/v1/pricing/preview", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"final_price":"53.40"`)
}
