package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restockhq/restock-api/internal/config"
	domainRepo "github.com/restockhq/restock-api/internal/domain/repository"
	"github.com/restockhq/restock-api/internal/presentation/http/handler"
	"github.com/restockhq/restock-api/internal/presentation/http/middleware"
	"github.com/restockhq/restock-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Supplier *handler.SupplierHandler
	Item     *handler.ItemHandler
	Outlet   *handler.OutletHandler
	Order    *handler.OrderHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-account rate limiter
		rateLimiter := middleware.NewAccountRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google sign-in routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Suppliers and their catalogs
	registerSupplierRoutes(protected, h, deps)

	// Outlets
	registerOutletRoutes(protected, h)

	// Items (direct access by ID)
	registerItemRoutes(protected, h)

	// Order history
	registerOrderRoutes(protected, h)
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)

		// Catalog items per supplier
		suppliers.GET("/:id/items", h.Item.List)
		suppliers.POST("/:id/items", h.Item.Create)

		// Order submission uses idempotency middleware so a retried
		// request never creates a second order
		suppliers.POST("/:id/orders", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
	}
}

func registerItemRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/items")
	{
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
	}
}

func registerOutletRoutes(protected *gin.RouterGroup, h *Handlers) {
	outlets := protected.Group("/outlets")
	{
		outlets.GET("", h.Outlet.List)
		outlets.POST("", h.Outlet.Create)
		outlets.GET("/:id", h.Outlet.Get)
		outlets.PUT("/:id", h.Outlet.Update)
		outlets.DELETE("/:id", h.Outlet.Delete)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
	}
}
