package main

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mern-eats/sales-api/internal/config"
	"github.com/mern-eats/sales-api/internal/handlers"
	"github.com/mern-eats/sales-api/internal/middleware"
)

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	api := router.Group("/api")
	{
		api.GET("/health", h.Health.Index)

		my := api.Group("/my")
		my.Use(middleware.Auth(cfg.JWTSecret))
		{
			reports := my.Group("/restaurant/:restaurantId/reports")
			reports.GET("/sales", h.SalesReport.Show)
			reports.GET("/sales/export", h.SalesReport.Export)
		}
	}

	return router
}
