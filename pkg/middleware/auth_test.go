package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smart-gmao/internal/entities"
	"smart-gmao/pkg/service"
	"smart-gmao/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*echo.Echo, service.JWTService) {
	t.Helper()
	jwtSvc := service.NewJWTService("secret", time.Hour, zap.NewNop())
	authMW := NewAuthMiddleware(jwtSvc, zap.NewNop())

	e := echo.New()
	whoami := func(c echo.Context) error {
		id, err := utils.GetUserIDFromCtx(c.Request().Context())
		require.NoError(t, err)
		return c.String(http.StatusOK, id)
	}
	g := e.Group("", authMW.Auth)
	g.GET("/me", whoami)
	g.DELETE("/admin", whoami, authMW.Authorize(entities.RoleAdmin))
	return e, jwtSvc
}

func TestAuth_BearerAndCookie(t *testing.T) {
	e, jwtSvc := newTestServer(t)
	token, err := jwtSvc.GenerateToken("user-1", entities.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_RejectsMissingAndInvalid(t *testing.T) {
	e, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthorize_Roles(t *testing.T) {
	e, jwtSvc := newTestServer(t)

	userToken, err := jwtSvc.GenerateToken("user-1", entities.RoleUser)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodDelete, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+userToken)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken, err := jwtSvc.GenerateToken("admin-1", entities.RoleAdmin)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodDelete, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
