package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// SessionStore guarda las sesiones autenticadas del lado del servidor.
// Las implementaciones deben descartar las sesiones vencidas (Get devuelve nil, nil).
type SessionStore interface {
	Save(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteByUser revoca todas las sesiones de un usuario (borrado o cambio de rol).
	DeleteByUser(ctx context.Context, userID string) error
}
