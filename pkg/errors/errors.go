package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Общие
	ErrNotFound   = errors.New("запись не найдена")
	ErrConflict   = errors.New("нарушение уникальности")
	ErrBadRequest = errors.New("неверный запрос")

	// Авторизация
	ErrUnauthorized         = errors.New("не авторизован")
	ErrForbidden            = errors.New("доступ запрещён")
	ErrAccountLocked        = errors.New("слишком много неудачных попыток входа, аккаунт временно заблокирован")
	ErrRegistrationDisabled = errors.New("регистрация временно отключена")

	// JWT и токены, все они 401
	ErrInvalidCredentials   = fmt.Errorf("%w: неверный email или пароль", ErrUnauthorized)
	ErrInvalidSigningMethod = fmt.Errorf("%w: неверный метод подписи токена", ErrUnauthorized)
	ErrInvalidToken         = fmt.Errorf("%w: недопустимый токен", ErrUnauthorized)
	ErrTokenExpired         = fmt.Errorf("%w: срок действия токена истёк", ErrUnauthorized)
	ErrTokenNotFound        = fmt.Errorf("%w: токен отсутствует", ErrUnauthorized)

	// Контекст
	ErrUserIDNotFoundInContext = fmt.Errorf("%w: UserID не найден в контексте запроса", ErrUnauthorized)
)

// ValidationError указывает на конкретное поле, не прошедшее проверку.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("поле '%s': %s", e.Field, e.Message)
}

func NewValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConflictError - нарушение ограничения уникальности (email, серийный номер).
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("значение '%s' поля '%s' уже используется", e.Value, e.Field)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

func NewConflictError(field, value string) error {
	return &ConflictError{Field: field, Value: value}
}

// HttpError несёт готовый HTTP-код и сообщение для клиента.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// StatusCode сопоставляет доменную ошибку с HTTP-статусом.
func StatusCode(err error) int {
	var httpErr *HttpError
	var validationErr *ValidationError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.As(err, &validationErr), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrAccountLocked):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrRegistrationDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
