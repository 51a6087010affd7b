package utils

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	apperrors "smart-gmao/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SuccessResponse оборачивает данные в общий конверт; count передаётся для списков.
func SuccessResponse(ctx echo.Context, data interface{}, message string, code int, count ...int) error {
	response := &HTTPResponse{Success: true, Message: message, Data: data}
	if len(count) > 0 {
		n := count[0]
		response.Count = &n
	}
	return ctx.JSON(code, response)
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	code, response := buildErrorResponse(err)
	if code >= http.StatusInternalServerError {
		logger.Error("Unexpected Error",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	} else {
		logger.Debug("HTTP Error", zap.Int("code", code), zap.Error(err))
	}
	return c.JSON(code, response)
}

func buildErrorResponse(err error) (int, *HTTPResponse) {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		response := &HTTPResponse{Success: false, Message: httpErr.Message, Data: httpErr.Details}
		if httpErr.Err != nil {
			response.Error = httpErr.Err.Error()
		}
		return httpErr.Code, response
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return http.StatusBadRequest, &HTTPResponse{
			Success: false,
			Message: fmt.Sprintf("Поле '%s' не прошло проверку '%s'", first.Field(), first.Tag()),
			Data:    map[string]string{"field": first.Field()},
		}
	}

	var fieldErr *apperrors.ValidationError
	if errors.As(err, &fieldErr) {
		return http.StatusBadRequest, &HTTPResponse{
			Success: false,
			Message: fieldErr.Error(),
			Data:    map[string]string{"field": fieldErr.Field},
		}
	}

	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		return http.StatusConflict, &HTTPResponse{
			Success: false,
			Message: conflictErr.Error(),
			Data:    map[string]string{"field": conflictErr.Field},
		}
	}

	code := apperrors.StatusCode(err)
	if code == http.StatusInternalServerError {
		return code, &HTTPResponse{Success: false, Message: "Внутренняя ошибка сервера", Error: err.Error()}
	}
	return code, &HTTPResponse{Success: false, Message: err.Error()}
}

// JSONFieldName возвращает имя поля из json-тега; используется валидатором.
func JSONFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
