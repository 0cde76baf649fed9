package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaCey/Teachers-Calendar/internal/models"
	"github.com/khaCey/Teachers-Calendar/internal/service"
)

func newAuthRouter(t *testing.T, authService *service.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWT(authService)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		claims := c.MustGet(ContextUserKey).(*models.OperatorClaims)
		c.JSON(http.StatusOK, gin.H{"name": claims.Name})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestJWTMissingHeader(t *testing.T) {
	r := newAuthRouter(t, service.NewAuthService("secret", time.Hour))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMalformedHeader(t *testing.T) {
	r := newAuthRouter(t, service.NewAuthService("secret", time.Hour))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTValidToken(t *testing.T) {
	authService := service.NewAuthService("secret", time.Hour)
	token, err := authService.IssueToken("Kacey", models.RoleTeacher)
	require.NoError(t, err)

	r := newAuthRouter(t, authService)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kacey")
}

func TestRequireRolesBlocksWrongRole(t *testing.T) {
	authService := service.NewAuthService("secret", time.Hour)
	token, err := authService.IssueToken("Kacey", models.RoleTeacher)
	require.NoError(t, err)

	r := newAuthRouter(t, authService, RequireRoles(models.RoleAdmin))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesAllowsMatchingRole(t *testing.T) {
	authService := service.NewAuthService("secret", time.Hour)
	token, err := authService.IssueToken("Kacey", models.RoleAdmin)
	require.NoError(t, err)

	r := newAuthRouter(t, authService, RequireRoles(models.RoleAdmin))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
