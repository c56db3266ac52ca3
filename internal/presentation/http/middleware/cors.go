package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sangkips/cospharm-api/internal/config"
)

var (
	devOrigins = []string{"http://localhost:3000", "http://localhost:3001", "http://127.0.0.1:3000"}

	defaultCORSMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}

	defaultCORSHeaders = []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "Origin"}

	defaultExposedHeaders = []string{
		"Content-Length",
		"Content-Type",
		"X-Request-ID",
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"Retry-After",
	}
)

const defaultCORSMaxAge = 12 * time.Hour

// CORSMiddleware builds the CORS policy from cfg. Bulk upload clients always
// get to send Idempotency-Key and read the replay marker, whatever the lists
// in cfg say.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     orDefault(cfg.AllowedOrigins, devOrigins),
		AllowMethods:     orDefault(cfg.AllowedMethods, defaultCORSMethods),
		AllowHeaders:     withHeader(orDefault(cfg.AllowedHeaders, defaultCORSHeaders), IdempotencyKeyHeader),
		ExposeHeaders:    withHeader(orDefault(cfg.ExposedHeaders, defaultExposedHeaders), IdempotencyReplayedHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if corsConfig.MaxAge <= 0 {
		corsConfig.MaxAge = defaultCORSMaxAge
	}

	return cors.New(corsConfig)
}

// orDefault copies values, falling back to def when values is empty
func orDefault(values, def []string) []string {
	if len(values) == 0 {
		values = def
	}
	return append([]string(nil), values...)
}

// withHeader appends h unless it is already listed
func withHeader(headers []string, h string) []string {
	for _, existing := range headers {
		if http.CanonicalHeaderKey(existing) == http.CanonicalHeaderKey(h) {
			return headers
		}
	}
	return append(headers, h)
}
