package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/catalog-feed-api/internal/config"
	"github.com/catalog-feed-api/internal/feed"
	"github.com/catalog-feed-api/internal/importer"
	"github.com/catalog-feed-api/internal/mapstore"
)

// NewRouter creates and configures the Gin router
func NewRouter(importSvc *importer.Service, feedSvc *feed.Service, maps mapstore.Store, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	importHandler := NewImportHandler(importSvc, feedSvc, cfg, log)
	feedHandler := NewFeedHandler(feedSvc, log)
	templateHandler := NewTemplateHandler(maps, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(feedSvc))

	// API v1
	v1 := router.Group("/v1")
	{
		// Import endpoints
		imports := v1.Group("/imports")
		{
			imports.POST("", importHandler.CreateImport)
		}

		// Mapping endpoints
		mappings := v1.Group("/mappings")
		{
			mappings.POST("/preview", importHandler.PreviewMapping)
		}

		// Template endpoints
		templates := v1.Group("/templates")
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.GET("/:name", templateHandler.GetTemplate)
			templates.PUT("/:name", templateHandler.SaveTemplate)
			templates.DELETE("/:name", templateHandler.DeleteTemplate)
		}

		// Feed endpoints
		feedGroup := v1.Group("/feed")
		{
			feedGroup.GET("", feedHandler.GetFeed)
			feedGroup.POST("/items", feedHandler.SubmitItem)
			feedGroup.PATCH("/items/:id", feedHandler.UpdateItem)
			feedGroup.DELETE("/items/:id", feedHandler.DeleteItem)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "catalog-feed-api",
	})
}

// metricsHandler returns feed item counts per source type
func metricsHandler(feedSvc *feed.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, updatedAt, err := feedSvc.Counts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read feed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"feed":            counts,
			"feed_updated_at": updatedAt,
			"timestamp":       time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
