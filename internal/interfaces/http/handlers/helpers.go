package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerline/ledgerline/internal/interfaces/http/middleware"
	"github.com/ledgerline/ledgerline/internal/shared/utils"
)

// middlewareTenantID reads the authenticated tenant from the context and
// writes a 401 when it is missing. Routes behind RequireAuth always carry
// it; the guard covers misconfigured route groups.
func middlewareTenantID(c *gin.Context) (uint, bool) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing tenant scope")
		return 0, false
	}
	return tenantID, true
}
