package dto

import (
	"strings"
	"time"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Nickname string `json:"nickname" validate:"required,notblank,max=50"`
	Username string `json:"username" validate:"required,notblank,min=3,max=50"`
	Password string `json:"password" validate:"required,notblank,min=6"`
	Role     string `json:"role" validate:"required,oneof=administrador operador"`
}

// Normalize recorta espacios de los campos de texto. La contraseña se guarda tal cual.
func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Nickname = strings.TrimSpace(r.Nickname)
	r.Username = strings.TrimSpace(r.Username)
}

// UpdateUserRequest actualización parcial de un usuario.
// Si se envía password, el usuario deberá cambiarla en el próximo acceso.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,notblank,max=100"`
	Nickname *string `json:"nickname" validate:"omitempty,notblank,max=50"`
	Username *string `json:"username" validate:"omitempty,notblank,min=3,max=50"`
	Password *string `json:"password" validate:"omitempty,notblank,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=administrador operador"`
}

func (r *UpdateUserRequest) Normalize() {
	trimPtr(r.Name)
	trimPtr(r.Nickname)
	trimPtr(r.Username)
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Nickname     string    `json:"nickname"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	IsFirstLogin bool      `json:"isFirstLogin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

// LoginResponse salida del login. El token viaja también en la cookie de sesión.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	IsFirstLogin bool         `json:"isFirstLogin"`
}

// ChangePasswordRequest entrada para cambiar la contraseña del usuario autenticado.
type ChangePasswordRequest struct {
	NewPassword     string `json:"newPassword" validate:"required,notblank,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}
