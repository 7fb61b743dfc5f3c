package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// ActivityLogRepository registro append-only de entradas y salidas.
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	// ListRecent devuelve los registros más recientes primero. activityType vacío = todos.
	ListRecent(ctx context.Context, activityType string, limit int) ([]*entity.ActivityLog, error)
}
