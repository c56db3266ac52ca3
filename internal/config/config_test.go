package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := load(viper.New(), "")

	assert.Equal(t, "cospharm-api", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 15*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.Pricing.PromotionsEnabled)
	assert.Equal(t, 50, cfg.Pricing.AuditDefaultLimit)
	assert.Equal(t, 500, cfg.Pricing.AuditMaxLimit)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)
	assert.Equal(t, 12*time.Hour, cfg.CORS.MaxAge)
	assert.Empty(t, cfg.CORS.ExposedHeaders)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("PRICING_PROMOTIONS_ENABLED", "false")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")

	cfg := load(viper.New(), "")

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.False(t, cfg.Pricing.PromotionsEnabled)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiryHours)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.CORS.AllowCredentials)
}

func TestDSN(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		c := DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", Name: "cospharm", User: "u", Password: "p", SSLMode: "disable", Timezone: "UTC"}
		assert.Equal(t, "host=db user=u password=p dbname=cospharm port=5432 sslmode=disable TimeZone=UTC", c.DSN())
	})

	t.Run("mysql", func(t *testing.T) {
		c := DatabaseConfig{Driver: "mysql", Host: "db", Port: "3306", Name: "cospharm", User: "u", Password: "p"}
		assert.Equal(t, "u:p@tcp(db:3306)/cospharm?charset=utf8mb4&parseTime=True&loc=UTC", c.DSN())
	})
}
