package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/api/handlers"
	"github.com/kanwar911/BTP-case-craft/internal/api/middleware"
	"github.com/kanwar911/BTP-case-craft/internal/config"
	"github.com/kanwar911/BTP-case-craft/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Casecraft Storefront API",
			"endpoints": []string{
				"GET /health",
				"GET /api/products",
				"GET /api/products/:id",
				"POST /api/auth/register",
				"POST /api/auth/token",
				"GET /api/auth/me",
				"GET /api/cart",
				"POST /api/cart/items",
				"GET /api/cart/summary",
				"POST /api/checkout",
				"GET /api/orders",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Public catalog routes
		api.GET("/products", handlers.HandleListProducts(repos, logger))
		api.GET("/products/:id", handlers.HandleGetProduct(repos, logger))

		// Admin catalog management
		adminProducts := api.Group("/products")
		adminProducts.Use(middleware.RequireAuth(cfg.Auth, repos, logger))
		adminProducts.Use(middleware.RequireAdmin())
		{
			adminProducts.POST("", handlers.HandleCreateProduct(repos, logger))
			adminProducts.PUT("/:id", handlers.HandleUpdateProduct(repos, logger))
			adminProducts.DELETE("/:id", handlers.HandleDeleteProduct(repos, logger))
		}

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.HandleRegister(cfg, repos, logger))
			auth.POST("/token", handlers.HandleLogin(cfg, repos, logger))
			auth.GET("/me",
				middleware.RequireAuth(cfg.Auth, repos, logger),
				handlers.HandleMe())
		}

		// Cart routes: work for guests (session cookie) and signed-in users
		cartRoutes := api.Group("/cart")
		cartRoutes.Use(middleware.OptionalAuth(cfg.Auth, repos, logger))
		{
			cartRoutes.GET("", handlers.HandleGetCart(repos, logger))
			cartRoutes.DELETE("", handlers.HandleClearCart(repos, logger))
			cartRoutes.GET("/summary", handlers.HandleCartSummary(cfg, repos, logger))
			cartRoutes.POST("/items", handlers.HandleAddCartItem(repos, logger))
			cartRoutes.PATCH("/items/:productId", handlers.HandleUpdateCartItem(repos, logger))
			cartRoutes.DELETE("/items/:productId", handlers.HandleRemoveCartItem(repos, logger))
		}

		// Checkout: open to guests, attributed to the user when a valid
		// token is present
		api.POST("/checkout",
			middleware.OptionalAuth(cfg.Auth, repos, logger),
			handlers.HandleCheckout(cfg, repos, logger))

		// Order history (requires authentication)
		orderRoutes := api.Group("/orders")
		orderRoutes.Use(middleware.RequireAuth(cfg.Auth, repos, logger))
		{
			orderRoutes.GET("", handlers.HandleListOrders(repos, logger))
			orderRoutes.GET("/:id", handlers.HandleGetOrder(repos, logger))
		}
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
