package middleware

import (
	"strings"

	"smart-gmao/internal/entities"
	apperrors "smart-gmao/pkg/errors"
	"smart-gmao/pkg/service"
	"smart-gmao/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const TokenCookieName = "token"

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth принимает токен из заголовка "Authorization: Bearer <token>", затем из cookie.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			m.logger.Debug("AuthMiddleware: токен отсутствует", zap.String("path", c.Path()))
			return utils.ErrorResponse(c, apperrors.ErrTokenNotFound, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			m.logger.Warn("AuthMiddleware: Ошибка валидации токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		ctx := utils.WithIdentity(c.Request().Context(), claims.UserID, claims.Role)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// Authorize пропускает только перечисленные роли; ставится после Auth.
func (m *AuthMiddleware) Authorize(roles ...entities.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := utils.GetUserRoleFromCtx(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, err, m.logger)
			}
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			m.logger.Warn("AuthMiddleware: недостаточно прав",
				zap.String("role", string(role)),
				zap.String("path", c.Path()),
			)
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}
	}
}

func extractToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie(TokenCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
