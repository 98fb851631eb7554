package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerline/ledgerline/internal/interfaces/http/handlers"
	"github.com/ledgerline/ledgerline/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupSubscriptionRoutes configures subscription routes.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	subscriptions := engine.Group("/api/subscription")
	subscriptions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subscriptions.GET("", cfg.SubscriptionHandler.GetSubscription)
		subscriptions.POST("/plan", cfg.SubscriptionHandler.UpdatePlan)
		subscriptions.POST("/cancel", cfg.SubscriptionHandler.CancelSubscription)
	}
}
