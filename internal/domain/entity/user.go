package entity

import "time"

// Roles válidos para User.
const (
	RoleAdministrador = "administrador"
	RoleOperador      = "operador"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Nickname     string
	Username     string // único
	PasswordHash string // bcrypt, nunca plano después de persistir
	Role         string // administrador, operador
	IsFirstLogin bool   // obliga a cambiar la contraseña en el próximo acceso
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene rol administrador.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdministrador
}
