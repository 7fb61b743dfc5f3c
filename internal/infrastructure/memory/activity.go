package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var (
	_ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)
	_ repository.DashboardRepository   = (*DashboardRepo)(nil)
)

// ActivityLogRepo log de actividad append-only en memoria.
type ActivityLogRepo struct {
	h handle
}

func (r *ActivityLogRepo) Create(_ context.Context, log *entity.ActivityLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	return r.h.write(func(st *state) error {
		st.logs = append(st.logs, *log)
		return nil
	})
}

// ListRecent más recientes primero; a igual CreatedAt gana el último insertado.
func (r *ActivityLogRepo) ListRecent(_ context.Context, activityType string, limit int) ([]*entity.ActivityLog, error) {
	var list []*entity.ActivityLog
	r.h.read(func(st *state) {
		for i := len(st.logs) - 1; i >= 0; i-- {
			l := st.logs[i]
			if activityType == "" || l.Type == activityType {
				list = append(list, &l)
			}
		}
	})
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// DashboardRepo agregados calculados sobre el estado en memoria.
type DashboardRepo struct {
	h handle
}

func (r *DashboardRepo) GetCounts(_ context.Context) (*entity.DashboardCounts, error) {
	var c entity.DashboardCounts
	r.h.read(func(st *state) {
		c.TotalPicos = len(st.picos)
		c.TotalPaletizados = len(st.stock)
		for _, p := range st.products {
			switch p.Category {
			case entity.CategoryAltaRotacao:
				c.AltaRotacao++
			case entity.CategoryBaixaRotacao:
				c.BaixaRotacao++
			}
		}
	})
	return &c, nil
}
