package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	subscriptionUsecases "github.com/ledgerline/ledgerline/internal/application/subscription/usecases"
	"github.com/ledgerline/ledgerline/internal/domain/subscription"
	apperrors "github.com/ledgerline/ledgerline/internal/shared/errors"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
	"github.com/ledgerline/ledgerline/internal/shared/utils"
)

type SubscriptionHandler struct {
	getSubscriptionUC    *subscriptionUsecases.GetSubscriptionUseCase
	updatePlanUC         *subscriptionUsecases.UpdatePlanUseCase
	cancelSubscriptionUC *subscriptionUsecases.CancelSubscriptionUseCase
	logger               logger.Interface
}

func NewSubscriptionHandler(
	getSubscriptionUC *subscriptionUsecases.GetSubscriptionUseCase,
	updatePlanUC *subscriptionUsecases.UpdatePlanUseCase,
	cancelSubscriptionUC *subscriptionUsecases.CancelSubscriptionUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		getSubscriptionUC:    getSubscriptionUC,
		updatePlanUC:         updatePlanUC,
		cancelSubscriptionUC: cancelSubscriptionUC,
		logger:               logger,
	}
}

// UpdatePlanRequest represents a plan change request
type UpdatePlanRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

// SubscriptionResponse represents subscription state in API responses
type SubscriptionResponse struct {
	TenantID          uint       `json:"tenant_id"`
	PlanID            string     `json:"plan_id"`
	Status            string     `json:"status"`
	CancelAtPeriodEnd bool       `json:"cancel_at_period_end"`
	CurrentPeriodEnd  *time.Time `json:"current_period_end,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// GetSubscription handles GET /api/subscription
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	tenantID, ok := middlewareTenantID(c)
	if !ok {
		return
	}

	sub, err := h.getSubscriptionUC.Execute(c.Request.Context(), tenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription retrieved successfully", toSubscriptionResponse(sub))
}

// UpdatePlan handles POST /api/subscription/plan
func (h *SubscriptionHandler) UpdatePlan(c *gin.Context) {
	tenantID, ok := middlewareTenantID(c)
	if !ok {
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request format", err.Error()))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), subscriptionUsecases.UpdatePlanCommand{
		TenantID: tenantID,
		PlanID:   req.PlanID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.CheckoutURL != "" {
		utils.SuccessResponse(c, http.StatusOK, "checkout redirect created", gin.H{"checkout_url": result.CheckoutURL})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "plan updated successfully", toSubscriptionResponse(result.Subscription))
}

// CancelSubscription handles POST /api/subscription/cancel
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	tenantID, ok := middlewareTenantID(c)
	if !ok {
		return
	}

	sub, err := h.cancelSubscriptionUC.Execute(c.Request.Context(), subscriptionUsecases.CancelSubscriptionCommand{
		TenantID: tenantID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "cancellation scheduled", toSubscriptionResponse(sub))
}

func toSubscriptionResponse(sub *subscription.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		TenantID:          sub.TenantID(),
		PlanID:            sub.PlanID(),
		Status:            string(sub.Status()),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd(),
		CurrentPeriodEnd:  sub.CurrentPeriodEnd(),
		UpdatedAt:         sub.UpdatedAt(),
	}
}
