// Файл: internal/entities/user-entity.go
package entities

import (
	"regexp"
	"strings"

	apperrors "smart-gmao/pkg/errors"
	"smart-gmao/pkg/types"
)

const (
	DefaultUserPhoto  = "default-avatar.png"
	MinPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

type User struct {
	ID        string  `json:"id" db:"id"`
	LastName  string  `json:"lastName" db:"last_name"`
	FirstName string  `json:"firstName" db:"first_name"`
	Email     string  `json:"email" db:"email"`
	Password  string  `json:"-" db:"password"`
	Role      Role    `json:"role" db:"role"`
	Phone     *string `json:"phone" db:"phone"`
	Photo     string  `json:"photo" db:"photo"`
	IsActive  bool    `json:"isActive" db:"is_active"`

	types.BaseEntity
}

// NormalizeEmail приводит email к виду, в котором он хранится и сравнивается.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ApplyDefaults заполняет необязательные поля значениями по умолчанию.
func (u *User) ApplyDefaults() {
	u.Email = NormalizeEmail(u.Email)
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.Photo == "" {
		u.Photo = DefaultUserPhoto
	}
}

// Validate проверяет пользователя; Password здесь уже хеш.
func (u *User) Validate() error {
	if strings.TrimSpace(u.LastName) == "" {
		return apperrors.NewValidationError("lastName", "обязательное поле")
	}
	if strings.TrimSpace(u.FirstName) == "" {
		return apperrors.NewValidationError("firstName", "обязательное поле")
	}
	if u.Email == "" {
		return apperrors.NewValidationError("email", "обязательное поле")
	}
	if !IsValidEmail(u.Email) {
		return apperrors.NewValidationError("email", "неверный формат email")
	}
	if u.Password == "" {
		return apperrors.NewValidationError("password", "обязательное поле")
	}
	if !u.Role.IsValid() {
		return apperrors.NewValidationError("role", "недопустимое значение '%s'", u.Role)
	}
	return nil
}

// PublicProfile - представление пользователя без пароля.
type PublicProfile struct {
	ID        string  `json:"id"`
	LastName  string  `json:"lastName"`
	FirstName string  `json:"firstName"`
	Email     string  `json:"email"`
	Role      Role    `json:"role"`
	Phone     *string `json:"phone"`
	Photo     string  `json:"photo"`
	IsActive  bool    `json:"isActive"`

	types.BaseEntity
}

func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:         u.ID,
		LastName:   u.LastName,
		FirstName:  u.FirstName,
		Email:      u.Email,
		Role:       u.Role,
		Phone:      u.Phone,
		Photo:      u.Photo,
		IsActive:   u.IsActive,
		BaseEntity: u.BaseEntity,
	}
}
