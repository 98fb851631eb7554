package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ledgerUsecases "github.com/ledgerline/ledgerline/internal/application/ledger/usecases"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
	"github.com/ledgerline/ledgerline/internal/shared/utils"
)

type MetricsHandler struct {
	getSalesMetricsUC  *ledgerUsecases.GetSalesMetricsUseCase
	getFinancialGoalUC *ledgerUsecases.GetFinancialGoalUseCase
	logger             logger.Interface
}

func NewMetricsHandler(
	getSalesMetricsUC *ledgerUsecases.GetSalesMetricsUseCase,
	getFinancialGoalUC *ledgerUsecases.GetFinancialGoalUseCase,
	logger logger.Interface,
) *MetricsHandler {
	return &MetricsHandler{
		getSalesMetricsUC:  getSalesMetricsUC,
		getFinancialGoalUC: getFinancialGoalUC,
		logger:             logger,
	}
}

// GetSalesMetrics handles GET /api/metrics/sales
func (h *MetricsHandler) GetSalesMetrics(c *gin.Context) {
	tenantID, ok := middlewareTenantID(c)
	if !ok {
		return
	}

	metrics, err := h.getSalesMetricsUC.Execute(c.Request.Context(), tenantID)
	if err != nil {
		h.logger.Errorw("failed to compute sales metrics", "tenant_id", tenantID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "sales metrics retrieved successfully", metrics)
}

// GetFinancialGoal handles GET /api/metrics/goal
func (h *MetricsHandler) GetFinancialGoal(c *gin.Context) {
	tenantID, ok := middlewareTenantID(c)
	if !ok {
		return
	}

	goal, err := h.getFinancialGoalUC.Execute(c.Request.Context(), tenantID)
	if err != nil {
		h.logger.Errorw("failed to compute financial goal", "tenant_id", tenantID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "financial goal retrieved successfully", goal)
}
