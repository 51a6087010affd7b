package utils

import "github.com/go-playground/validator/v10"

// CustomValidator подключает validator к echo; ошибки называют поля по json-тегам.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	v.RegisterTagNameFunc(JSONFieldName)
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
