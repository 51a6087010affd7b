package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	apperrors "smart-gmao/pkg/errors"
	"smart-gmao/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	AppName    = "SmartGMAO"
	AppVersion = "1.0.0"
)

func runWelcomeRouter(e *echo.Echo, api *echo.Group, checks map[string]HealthCheck, logger *zap.Logger) {
	e.GET("/", func(c echo.Context) error {
		return utils.SuccessResponse(c, map[string]string{
			"name":    AppName,
			"version": AppVersion,
			"status":  "OK",
		}, "Добро пожаловать в API SmartGMAO", http.StatusOK)
	})

	api.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		status := map[string]string{}
		healthy := true
		for name, check := range checks {
			if err := check(ctx); err != nil {
				logger.Warn("health: зависимость недоступна", zap.String("dependency", name), zap.Error(err))
				status[name] = err.Error()
				healthy = false
				continue
			}
			status[name] = "OK"
		}
		if !healthy {
			return utils.ErrorResponse(c,
				apperrors.NewHttpError(http.StatusServiceUnavailable, "Сервис недоступен", nil, status), logger)
		}
		return utils.SuccessResponse(c, status, "OK", http.StatusOK)
	})
}

// NewHTTPErrorHandler отдаёт ошибки echo (404, 405, паники) в общем конверте.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			message := http.StatusText(he.Code)
			if he.Code == http.StatusNotFound {
				message = "Маршрут не найден: " + c.Request().Method + " " + c.Request().URL.Path
			} else if m, ok := he.Message.(string); ok {
				message = m
			}
			err = apperrors.NewHttpError(he.Code, message, nil, nil)
		}

		if respErr := utils.ErrorResponse(c, err, logger); respErr != nil {
			logger.Error("не удалось отправить ответ об ошибке", zap.Error(respErr))
		}
	}
}
