package controllers

import (
	"net/http"
	"time"

	"smart-gmao/internal/dto"
	"smart-gmao/internal/services"
	apperrors "smart-gmao/pkg/errors"
	"smart-gmao/pkg/middleware"
	"smart-gmao/pkg/service"
	"smart-gmao/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService  services.AuthServiceInterface
	jwtSvc       service.JWTService
	cookieSecure bool
	logger       *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	cookieSecure bool,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService:  authService,
		jwtSvc:       jwtSvc,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Warn("Login: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных для входа", err, nil))
	}

	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	user, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("Login: ошибка авторизации", zap.String("email", payload.Email), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	token, err := ctrl.jwtSvc.GenerateToken(user.ID, user.Role)
	if err != nil {
		ctrl.logger.Error("Login: не удалось подписать токен", zap.String("userID", user.ID), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	c.SetCookie(ctrl.tokenCookie(token, ctrl.jwtSvc.GetTokenTTL()))

	response := dto.LoginResponseDTO{Token: token, User: user.PublicProfile()}
	return utils.SuccessResponse(c, response, "Авторизация прошла успешно", http.StatusOK)
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	cookie := ctrl.tokenCookie("", 0)
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return utils.SuccessResponse(c, nil, "Вы успешно вышли из системы.", http.StatusOK)
}

func (ctrl *AuthController) Register(c echo.Context) error {
	var payload dto.RegisterDTO
	_ = c.Bind(&payload)

	return ctrl.errorResponse(c, ctrl.authService.Register(c.Request().Context(), payload))
}

func (ctrl *AuthController) Me(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		ctrl.logger.Error("Не удалось получить userID из контекста в защищенном маршруте")
		return ctrl.errorResponse(c, err)
	}

	user, err := ctrl.authService.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, map[string]interface{}{"user": user.PublicProfile()}, "", http.StatusOK)
}

func (ctrl *AuthController) tokenCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   ctrl.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
