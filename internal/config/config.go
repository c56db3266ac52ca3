package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Pricing   PricingConfig
	Upload    UploadConfig
	Log       LogConfig
}

type AppConfig struct {
	Name            string
	Env             string
	Port            string
	Debug           bool
	SeedDemo        bool
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Driver       string
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	Timezone     string
	MaxIdleConns int
	MaxOpenConns int
}

type JWTConfig struct {
	Secret      string
	Issuer      string
	ExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           time.Duration
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type PricingConfig struct {
	PromotionsEnabled bool
	AuditDefaultLimit int
	AuditMaxLimit     int
}

type UploadConfig struct {
	MaxSize int64
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() *Config {
	return load(viper.New(), ".env")
}

func load(v *viper.Viper, envFile string) *Config {
	if envFile != "" {
		v.SetConfigFile(envFile)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("Warning: %s file not found, using environment variables: %v", envFile, err)
		}
	}
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("APP_NAME", "cospharm-api")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_SEED_DEMO", false)
	v.SetDefault("APP_SHUTDOWN_TIMEOUT_SECONDS", 15)
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "cospharm")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "Africa/Windhoek")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	v.SetDefault("JWT_ISSUER", "cospharm-api")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	v.SetDefault("CORS_EXPOSED_HEADERS", []string{})
	v.SetDefault("CORS_ALLOW_CREDENTIALS", true)
	v.SetDefault("CORS_MAX_AGE_HOURS", 12)
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_DURATION", 60)
	v.SetDefault("PRICING_PROMOTIONS_ENABLED", true)
	v.SetDefault("PRICING_AUDIT_DEFAULT_LIMIT", 50)
	v.SetDefault("PRICING_AUDIT_MAX_LIMIT", 500)
	v.SetDefault("UPLOAD_MAX_SIZE", 10485760)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "")

	cfg := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Env:             v.GetString("APP_ENV"),
			Port:            v.GetString("APP_PORT"),
			Debug:           v.GetBool("APP_DEBUG"),
			SeedDemo:        v.GetBool("APP_SEED_DEMO"),
			ShutdownTimeout: time.Duration(v.GetInt("APP_SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			Driver:       strings.ToLower(v.GetString("DB_DRIVER")),
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			Name:         v.GetString("DB_NAME"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			SSLMode:      v.GetString("DB_SSL_MODE"),
			Timezone:     v.GetString("DB_TIMEZONE"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			Issuer:      v.GetString("JWT_ISSUER"),
			ExpiryHours: time.Duration(v.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins:   v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods:   v.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders:   v.GetStringSlice("CORS_ALLOWED_HEADERS"),
			ExposedHeaders:   v.GetStringSlice("CORS_EXPOSED_HEADERS"),
			AllowCredentials: v.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           time.Duration(v.GetInt("CORS_MAX_AGE_HOURS")) * time.Hour,
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: v.GetInt("RATE_LIMIT_DURATION"),
		},
		Pricing: PricingConfig{
			PromotionsEnabled: v.GetBool("PRICING_PROMOTIONS_ENABLED"),
			AuditDefaultLimit: v.GetInt("PRICING_AUDIT_DEFAULT_LIMIT"),
			AuditMaxLimit:     v.GetInt("PRICING_AUDIT_MAX_LIMIT"),
		},
		Upload: UploadConfig{
			MaxSize: v.GetInt64("UPLOAD_MAX_SIZE"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
		if cfg.App.Env == "development" {
			cfg.Log.Format = "console"
		}
	}

	return cfg
}

// IsProduction reports whether the app runs with production settings
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// DSN builds the driver specific connection string
func (c *DatabaseConfig) DSN() string {
	if c.Driver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.Name)
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
