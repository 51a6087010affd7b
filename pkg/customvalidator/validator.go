// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"smart-gmao/internal/entities"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations регистрирует правила для email и перечислений;
// перечисления принимают как код, так и французскую метку.
func RegisterCustomValidations(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"gmao_email":         isGoodEmailFormat,
		"equipment_category": enumRule(entities.ParseEquipmentCategory),
		"equipment_status":   enumRule(entities.ParseEquipmentStatus),
		"equipment_priority": enumRule(entities.ParseEquipmentPriority),
		"maintenance_type":   enumRule(entities.ParseMaintenanceType),
		"ticket_priority":    enumRule(entities.ParseTicketPriority),
		"ticket_status":      enumRule(entities.ParseTicketStatus),
		"user_role":          enumRule(entities.ParseRole),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return entities.IsValidEmail(entities.NormalizeEmail(fl.Field().String()))
}

func enumRule[T ~string](parse func(string) (T, bool)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, ok := parse(fl.Field().String())
		return ok
	}
}
