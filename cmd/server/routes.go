package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"codeberg.org/serika/portal/api/rest/auth"
	"codeberg.org/serika/portal/api/rest/billing"
	"codeberg.org/serika/portal/api/rest/docs"
	"codeberg.org/serika/portal/api/rest/health"
	"codeberg.org/serika/portal/api/rest/keys"
	"codeberg.org/serika/portal/api/rest/playground"
	"codeberg.org/serika/portal/api/rest/usage"
	"codeberg.org/serika/portal/internal/metrics"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(RequestIDMiddleware())
	router.Use(AccessLogMiddleware())
	router.Use(CORSMiddleware(server.config.CORSAllowedOrigins))
	router.Use(metrics.Middleware())
	router.Use(otelgin.Middleware("serika-portal"))

	router.GET("/health", health.Handler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/portal/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.apiClient, server.config.AuthCookieName, LoginRateLimiter())
		keys.RegisterRoutes(v1, server.apiClient, server.config.AuthCookieName)
		usage.RegisterRoutes(v1, server.apiClient, server.config.AuthCookieName)
		billing.RegisterRoutes(v1, server.apiClient, server.config.AuthCookieName)
		playground.RegisterRoutes(v1, server.apiClient)
		docs.RegisterRoutes(v1)
	}

	RegisterPages(router, server)
}
