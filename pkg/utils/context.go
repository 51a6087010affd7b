package utils

import (
	"context"
	"time"

	"smart-gmao/internal/entities"
	"smart-gmao/pkg/contextkeys"
	apperrors "smart-gmao/pkg/errors"

	"github.com/labstack/echo/v4"
)

const DefaultRequestTimeout = 10 * time.Second

func ContextWithTimeout(ctx echo.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request().Context(), timeout)
}

func WithIdentity(ctx context.Context, userID string, role entities.Role) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, userID)
	return context.WithValue(ctx, contextkeys.UserRoleKey, role)
}

func GetUserIDFromCtx(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(string)
	if !ok || userID == "" {
		return "", apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetUserRoleFromCtx(ctx context.Context) (entities.Role, error) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(entities.Role)
	if !ok {
		return "", apperrors.ErrUserIDNotFoundInContext
	}
	return role, nil
}
