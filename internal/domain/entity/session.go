package entity

import "time"

// Session sesión autenticada guardada del lado del servidor.
// User es una copia del usuario en el momento del login (se refresca al cambiar la contraseña).
type Session struct {
	ID        string
	UserID    string
	User      User
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión ya venció en el instante now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
