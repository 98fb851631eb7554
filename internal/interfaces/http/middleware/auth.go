package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ledgerline/ledgerline/internal/infrastructure/auth"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
	"github.com/ledgerline/ledgerline/internal/shared/utils"
)

// ContextKeyTenantID is the gin context key carrying the authenticated
// tenant scope.
const ContextKeyTenantID = "tenant_id"

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(ContextKeyTenantID, claims.TenantID)

		c.Next()
	}
}

// TenantID extracts the authenticated tenant from the request context.
func TenantID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextKeyTenantID)
	if !exists {
		return 0, false
	}
	tenantID, ok := value.(uint)
	return tenantID, ok
}
