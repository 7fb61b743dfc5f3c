package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas read-only para el dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetCounts cuenta picos, filas de stock paletizado y productos por categoría en una sola consulta.
func (r *DashboardRepo) GetCounts(ctx context.Context) (*entity.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT count(*) FROM picos),
			(SELECT count(*) FROM paletizado_stock),
			(SELECT count(*) FROM products WHERE category = $1),
			(SELECT count(*) FROM products WHERE category = $2)`
	var c entity.DashboardCounts
	err := r.q.QueryRow(ctx, query, entity.CategoryAltaRotacao, entity.CategoryBaixaRotacao).Scan(
		&c.TotalPicos, &c.TotalPaletizados, &c.AltaRotacao, &c.BaixaRotacao,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}
