package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/infrastructure/auth"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func setupAuthRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	mw := NewAuthMiddleware(jwtService, newNopLogger())
	router.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		tenantID, ok := TenantID(c)
		if !ok {
			c.JSON(500, gin.H{"error": "tenant scope missing"})
			return
		}
		c.JSON(200, gin.H{"tenant_id": tenantID})
	})
	return router
}

func getProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_AcceptsGeneratedAccessToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	router := setupAuthRouter(jwtService)

	pair, err := jwtService.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	w := getProtected(router, "Bearer "+pair.AccessToken)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tenant_id":42`)
}

func TestRequireAuth_RejectsRefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	router := setupAuthRouter(jwtService)

	pair, err := jwtService.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, pair.RefreshToken)

	// The refresh token verifies but carries the wrong token type.
	w := getProtected(router, "Bearer "+pair.RefreshToken)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token type")
}

func TestRequireAuth_RejectsBadCredentials(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	router := setupAuthRouter(jwtService)

	otherService := auth.NewJWTService("other-secret", 15, 7)
	foreign, err := otherService.Generate(42)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
	}{
		{"missing header", ""},
		{"not a bearer scheme", "Token abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong signing secret", "Bearer " + foreign.AccessToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getProtected(router, tt.authHeader)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestVerify_RoundTripClaims(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)

	pair, err := jwtService.Generate(7)
	require.NoError(t, err)

	claims, err := jwtService.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.TenantID)
	assert.Equal(t, auth.TokenTypeAccess, claims.TokenType)

	refreshClaims, err := jwtService.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, auth.TokenTypeRefresh, refreshClaims.TokenType)
}
