package dto

import "smart-gmao/internal/entities"

type LoginDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterDTO struct {
	LastName  string `json:"lastName" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	Email     string `json:"email" validate:"required,gmao_email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type LoginResponseDTO struct {
	Token string                 `json:"token"`
	User  entities.PublicProfile `json:"user"`
}
