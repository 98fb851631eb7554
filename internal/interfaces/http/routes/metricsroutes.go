package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerline/ledgerline/internal/interfaces/http/handlers"
	"github.com/ledgerline/ledgerline/internal/interfaces/http/middleware"
)

// MetricsRouteConfig holds dependencies for metrics routes.
type MetricsRouteConfig struct {
	MetricsHandler *handlers.MetricsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupMetricsRoutes configures sales metrics and goal routes.
func SetupMetricsRoutes(engine *gin.Engine, cfg *MetricsRouteConfig) {
	metrics := engine.Group("/api/metrics")
	metrics.Use(cfg.AuthMiddleware.RequireAuth())
	{
		metrics.GET("/sales", cfg.MetricsHandler.GetSalesMetrics)
		metrics.GET("/goal", cfg.MetricsHandler.GetFinancialGoal)
	}
}
