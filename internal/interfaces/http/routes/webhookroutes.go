package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerline/ledgerline/internal/interfaces/http/handlers"
)

// WebhookRouteConfig holds dependencies for webhook routes.
type WebhookRouteConfig struct {
	WebhookHandler *handlers.WebhookHandler
}

// SetupWebhookRoutes configures provider webhook routes. Deliveries are
// authenticated upstream by the provider, not by tenant tokens.
func SetupWebhookRoutes(engine *gin.Engine, cfg *WebhookRouteConfig) {
	webhooks := engine.Group("/webhooks")
	{
		webhooks.POST("/billing", cfg.WebhookHandler.HandleBillingWebhook)
	}
}
