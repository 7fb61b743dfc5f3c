package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// Límites de GET /api/activity-logs.
const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
)

// ActivityUseCase consulta el log de actividad.
type ActivityUseCase struct {
	repo repository.ActivityLogRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityLogRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// ListRecent lista los registros más recientes. activityType vacío = todos;
// limit <= 0 usa DefaultActivityLimit y se recorta a MaxActivityLimit.
func (uc *ActivityUseCase) ListRecent(ctx context.Context, activityType string, limit int) ([]dto.ActivityLogResponse, error) {
	switch activityType {
	case "", entity.ActivityEntrada, entity.ActivitySaida:
	default:
		return nil, fmt.Errorf("%w: type debe ser entrada o saida", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}
	logs, err := uc.repo.ListRecent(ctx, activityType, limit)
	if err != nil {
		return nil, err
	}
	return dto.FromActivityLogs(logs), nil
}
