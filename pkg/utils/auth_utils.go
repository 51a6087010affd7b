package utils

import (
	"errors"
	"fmt"

	"smart-gmao/internal/entities"
	apperrors "smart-gmao/pkg/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt учитывает только первые 72 байта пароля.
const maxPasswordBytes = 72

// HashPassword проверяет длину пароля и возвращает bcrypt-хеш для хранения.
func HashPassword(password string) (string, error) {
	if len([]rune(password)) < entities.MinPasswordLength {
		return "", apperrors.NewValidationError("password", "минимум %d символов", entities.MinPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return "", apperrors.NewValidationError("password", "не более %d байт", maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("не удалось хешировать пароль: %w", err)
	}
	return string(hash), nil
}

// ComparePasswords: несовпадение - ErrInvalidCredentials, повреждённый хеш - обычная ошибка.
func ComparePasswords(hashedPassword string, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return apperrors.ErrInvalidCredentials
	default:
		return fmt.Errorf("не удалось проверить пароль: %w", err)
	}
}
