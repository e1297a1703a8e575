package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medsupply/orderflow/internal/api/handlers"
	"github.com/medsupply/orderflow/internal/backend"
	"github.com/medsupply/orderflow/internal/config"
	"github.com/medsupply/orderflow/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, store *service.Store, apiClient *backend.Client, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Picker lists (proxied from the backend)
		v1.GET("/clients", handlers.HandleListClients(apiClient, logger))
		v1.GET("/distribution-centers", handlers.HandleListCenters(apiClient, logger))

		// Order composition sessions
		v1.POST("/sessions", handlers.HandleCreateSession(cfg, store, apiClient, logger))

		session := v1.Group("/sessions/:id")
		{
			session.POST("/items/:productID/increment", handlers.HandleIncrement(store))
			session.POST("/items/:productID/decrement", handlers.HandleDecrement(store))
			session.PUT("/selection", handlers.HandleUpdateSelection(store))
			session.GET("/summary", handlers.HandleGetSummary(store))
			session.POST("/submit", handlers.HandleSubmit(store, logger))
			session.GET("/state", handlers.HandleGetState(store))
			session.DELETE("/error", handlers.HandleClearError(store))
			session.POST("/reset", handlers.HandleReset(store))
		}
	}

	return router
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
