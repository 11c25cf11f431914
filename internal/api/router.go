package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/magazine-platform/internal/auth"
	"github.com/magazine-platform/internal/config"
	"github.com/magazine-platform/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router. The auth and admin
// route groups are only registered when a token service is configured;
// without JWT_SECRET the site runs as a public read/engage surface.
func NewRouter(services *service.Services, cfg *config.Config, tokens *auth.TokenService, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	contentHandler := NewContentHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	categoryHandler := NewCategoryHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	engagementHandler := NewEngagementHandler(services, log)
	subscriptionHandler := NewSubscriptionHandler(services, log)

	router.GET("/health", healthCheck)

	api := router.Group("/api")
	{
		api.GET("/content", contentHandler.GetContent)

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.POST("", articleHandler.Create)
			articles.GET("/:id", articleHandler.Get)
			articles.PUT("/:id", articleHandler.Update)
			articles.DELETE("/:id", articleHandler.Delete)

			articles.GET("/:id/comments", commentHandler.List)
			articles.POST("/:id/comments", commentHandler.Post)
			articles.POST("/:id/comments/:comment_id/replies", commentHandler.Reply)

			articles.POST("/:id/like", engagementHandler.Like)
			articles.POST("/:id/unlike", engagementHandler.Unlike)
			articles.POST("/:id/bookmark", engagementHandler.Bookmark)
			articles.POST("/:id/unbookmark", engagementHandler.Unbookmark)
			articles.POST("/:id/share", engagementHandler.Share)
		}

		api.GET("/engagement", engagementHandler.State)

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Create)
			categories.GET("/:slug", categoryHandler.GetBySlug)
		}

		api.POST("/subscription/cancellations", subscriptionHandler.RecordCancellation)

		if tokens != nil {
			authHandler := NewAuthHandler(services, log)
			adminHandler := NewAdminHandler(services, log)
			authRequired := authMiddleware(tokens, services)

			authGroup := api.Group("/auth")
			{
				authGroup.POST("/register", authHandler.Register)
				authGroup.POST("/login", authHandler.Login)
				authGroup.GET("/me", authRequired, authHandler.Me)
			}

			admin := api.Group("/admin", authRequired)
			{
				admin.GET("/articles", adminHandler.MyArticles)
				admin.POST("/articles", adminHandler.CreateArticle)
				admin.PUT("/articles/:id", adminHandler.UpdateArticle)
				admin.DELETE("/articles/:id", adminHandler.DeleteArticle)
				admin.GET("/articles/:id/stats", adminHandler.Stats)
				admin.GET("/comments", adminHandler.AllComments)
				admin.DELETE("/articles/:id/comments/:comment_id", commentHandler.Delete)
				admin.GET("/cancellations", subscriptionHandler.ListCancellations)
			}
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "magazine-platform",
	})
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

// requestIDMiddleware tags every request with an ID for log correlation.
// An incoming X-Request-ID is trusted so callers can trace across hops.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
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
			Str("request_id", c.GetString("request_id")).
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
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
