package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo registro append-only sobre la tabla activity_logs.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create inserta un registro. Asigna ID si viene vacío.
func (r *ActivityLogRepo) Create(ctx context.Context, log *entity.ActivityLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO activity_logs (id, type, product_code, product_description, quantity, category, item_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		log.ID, log.Type, log.ProductCode, log.ProductDescription, log.Quantity, log.Category,
		log.ItemType, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// ListRecent devuelve los registros más recientes primero, opcionalmente filtrados por tipo.
func (r *ActivityLogRepo) ListRecent(ctx context.Context, activityType string, limit int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, type, product_code, product_description, quantity, category, item_type, created_at
		FROM activity_logs
		WHERE ($1 = '' OR type = $1)
		ORDER BY created_at DESC, id
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, activityType, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(&l.ID, &l.Type, &l.ProductCode, &l.ProductDescription, &l.Quantity,
			&l.Category, &l.ItemType, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
