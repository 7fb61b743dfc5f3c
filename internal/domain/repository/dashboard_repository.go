package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// DashboardRepository consultas de lectura agregadas para el dashboard.
type DashboardRepository interface {
	GetCounts(ctx context.Context) (*entity.DashboardCounts, error)
}
