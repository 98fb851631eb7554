package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	billingUsecases "github.com/ledgerline/ledgerline/internal/application/billing/usecases"
	apperrors "github.com/ledgerline/ledgerline/internal/shared/errors"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

type WebhookHandler struct {
	processWebhookUC *billingUsecases.ProcessWebhookUseCase
	logger           logger.Interface
}

func NewWebhookHandler(
	processWebhookUC *billingUsecases.ProcessWebhookUseCase,
	logger logger.Interface,
) *WebhookHandler {
	return &WebhookHandler{
		processWebhookUC: processWebhookUC,
		logger:           logger,
	}
}

// HandleBillingWebhook ingests one provider delivery. The response body
// follows the provider's contract rather than the API envelope:
// acknowledged deliveries return {received:true}, malformed bodies 400,
// and store failures a 5xx so the provider retries.
func (h *WebhookHandler) HandleBillingWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.logger.Warnw("failed to read webhook body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	result, err := h.processWebhookUC.Execute(c.Request.Context(), body)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook processing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"received": true,
		"status":   result.Outcome,
	})
}
