package controllers

import (
	"net/http"
	"strings"

	apperrors "smart-gmao/pkg/errors"

	"github.com/labstack/echo/v4"
)

func badBody(err error) error {
	return apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil)
}

// firstQuery возвращает первый непустой параметр из списка синонимов.
func firstQuery(ctx echo.Context, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(ctx.QueryParam(name)); v != "" {
			return v
		}
	}
	return ""
}

func wantsXLSX(ctx echo.Context) bool {
	return strings.EqualFold(ctx.QueryParam("format"), "xlsx")
}
