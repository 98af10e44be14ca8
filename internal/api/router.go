package api

import (
	"net/http"
	"time"

	"github.com/comment-insights-api/internal/config"
	"github.com/comment-insights-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	commentHandler := NewCommentHandler(services, log)
	analyticsHandler := NewAnalyticsHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	comments := router.Group("/comments")
	{
		comments.POST("", commentHandler.SubmitComment)
		comments.GET("/all", commentHandler.ListAllComments)
		comments.GET("/product/:productId", commentHandler.ListProductComments)
		comments.DELETE("/:commentId", commentHandler.DeleteComment)
		comments.PUT("/:commentId/approve", commentHandler.SetApproval)

		analytics := comments.Group("/analytics")
		{
			analytics.GET("/overview", analyticsHandler.Overview)
			analytics.GET("/overview/:productId", analyticsHandler.Overview)
			analytics.GET("/most-positive", analyticsHandler.MostPositive)
			analytics.GET("/most-positive/:productId", analyticsHandler.MostPositive)
			analytics.GET("/most-negative", analyticsHandler.MostNegative)
			analytics.GET("/most-negative/:productId", analyticsHandler.MostNegative)
			analytics.GET("/by-product", analyticsHandler.ProductRollups)
			analytics.GET("/trends", analyticsHandler.Trends)
			analytics.GET("/trends/:productId", analyticsHandler.Trends)
			analytics.GET("/sentiment-distribution/:productId", analyticsHandler.Distribution)
			analytics.GET("/word-cloud/:productId", analyticsHandler.WordCloud)
			analytics.GET("/product-features/:productId", analyticsHandler.ProductFeatures)
			analytics.GET("/all-products-features", analyticsHandler.AllProductsFeatures)
			analytics.POST("/reanalyze", analyticsHandler.Reanalyze)
			analytics.POST("/reanalyze/:productId", analyticsHandler.Reanalyze)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "comment-insights-api",
	})
}

// metricsHandler returns comment store metrics
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		commentsCount, _ := services.Comment.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"comments": commentsCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
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
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
