package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookstore-search/internal/shared/middleware"
	"bookstore-search/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIPMiddleware(),
		middleware.Logger(),
		middleware.Metrics(),
	)

	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupSearchRoutes(router, c)
	setupBookRoutes(router, c)

	return router
}

// ========================================
// SEARCH ROUTES
// ========================================
func setupSearchRoutes(router *gin.Engine, c *container.Container) {
	search := router.Group("/search")
	search.Use(middleware.RateLimit(c.Limiter))
	{
		search.GET("", c.SearchHandler.Search)
		search.GET("/books", c.SearchHandler.SearchBooks)
		search.GET("/authors", c.SearchHandler.SearchAuthors)
		search.GET("/suggestions", c.SearchHandler.Suggestions)
		search.GET("/popular", c.SearchHandler.Popular)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(router *gin.Engine, c *container.Container) {
	books := router.Group("/books")
	{
		books.GET("/:id", c.BookHandler.GetByID)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health := gin.H{
			"status":  "ok",
			"app":     c.Config.App.Name,
			"version": c.Config.App.Version,
			"time":    time.Now().UTC().Format(time.RFC3339),
		}

		if c.Redis != nil {
			checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
			defer cancel()

			if err := c.Redis.HealthCheck(checkCtx); err != nil {
				health["status"] = "degraded"
				health["redis"] = err.Error()
				ctx.JSON(http.StatusServiceUnavailable, health)
				return
			}
			health["redis"] = "ok"
		}

		ctx.JSON(http.StatusOK, health)
	}
}
