package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sangkips/cospharm-api/internal/config"
	domainRepo "github.com/sangkips/cospharm-api/internal/domain/repository"
	"github.com/sangkips/cospharm-api/internal/presentation/http/handler"
	"github.com/sangkips/cospharm-api/internal/presentation/http/middleware"
	"github.com/sangkips/cospharm-api/pkg/clock"
	"github.com/sangkips/cospharm-api/pkg/metrics"
	"github.com/sangkips/cospharm-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Pricing    *handler.PricingHandler
	Product    *handler.ProductHandler
	Customer   *handler.CustomerHandler
	Promotion  *handler.PromotionHandler
	BulkUpload *handler.BulkUploadHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.RateLimiter
	Metrics         *metrics.Metrics
	Clock           clock.Clock
	Log             zerolog.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log, deps.Metrics))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	v1.Use(middleware.OptionalAuthMiddleware(deps.JWTManager))
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}

	registerPricingRoutes(v1, h, deps)
	registerProductRoutes(v1, h, deps)
	registerCustomerRoutes(v1, h, deps)
	registerPromotionRoutes(v1, h, deps)
	registerBulkUploadRoutes(v1, h, deps)

	return router
}

// guarded requires a valid token carrying permission
func guarded(jwt *utils.JWTManager, permission string) gin.HandlersChain {
	return gin.HandlersChain{middleware.AuthMiddleware(jwt), middleware.RequirePermission(permission)}
}

func registerPricingRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	pricing := v1.Group("/pricing")
	{
		pricing.POST("/calculate", h.Pricing.Calculate)
		pricing.POST("/preview", h.Pricing.Preview)

		audits := pricing.Group("/audits", guarded(deps.JWTManager, middleware.PermissionViewAudits)...)
		audits.GET("", h.Pricing.ListAudits)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)

		audited := products.Group("", guarded(deps.JWTManager, middleware.PermissionViewAudits)...)
		audited.GET("/:id/audits", h.Pricing.ListProductAudits)

		manage := products.Group("", guarded(deps.JWTManager, middleware.PermissionManageProducts)...)
		manage.POST("", h.Product.Create)
		manage.PUT("/:id", h.Product.Update)
		manage.DELETE("/:id", h.Product.Delete)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	customers := v1.Group("/customers", guarded(deps.JWTManager, middleware.PermissionManageCustomers)...)
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("", h.Customer.Create)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerPromotionRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	promotions := v1.Group("/promotions")
	{
		promotions.GET("", h.Promotion.List)
		promotions.GET("/:id", h.Promotion.Get)

		manage := promotions.Group("", guarded(deps.JWTManager, middleware.PermissionManagePromotions)...)
		manage.POST("", h.Promotion.Create)
		manage.DELETE("/:id", h.Promotion.Delete)
	}
}

func registerBulkUploadRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	uploads := v1.Group("/bulk-uploads", guarded(deps.JWTManager, middleware.PermissionBulkUpload)...)
	{
		uploads.GET("", h.BulkUpload.List)
		uploads.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo:  deps.IdempotencyRepo,
			Clock: deps.Clock,
			Log:   deps.Log,
		}), h.BulkUpload.Upload)
	}
}
