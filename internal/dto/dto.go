package dto

import (
	"strings"

	apperrors "smart-gmao/pkg/errors"
)

// parseEnum нормализует код или французскую метку; нераспознанное значение
// возвращается как есть, чтобы его отклонила валидация сущности.
func parseEnum[T ~string](s string, parse func(string) (T, bool)) T {
	if v, ok := parse(s); ok {
		return v
	}
	return T(strings.TrimSpace(s))
}

// checkEnum отклоняет переданное в патче, но нераспознанное значение (в том числе пустое),
// иначе ApplyDefaults молча вернул бы поле к значению по умолчанию.
func checkEnum[T ~string](field string, s *string, parse func(string) (T, bool)) error {
	if s == nil {
		return nil
	}
	if _, ok := parse(*s); !ok {
		return apperrors.NewValidationError(field, "недопустимое значение '%s'", *s)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
