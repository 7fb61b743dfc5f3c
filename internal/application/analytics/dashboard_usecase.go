// Package analytics contiene el caso de uso del dashboard de inventario.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

const dashboardRecentActivity = 5 // registros por lista en el dashboard

// DashboardUseCase genera los contadores y la actividad reciente del dashboard.
//
// Fuente de datos: DashboardRepository y ActivityLogRepository (consultas read-only).
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
	activityRepo  repository.ActivityLogRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository, activityRepo repository.ActivityLogRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo, activityRepo: activityRepo}
}

// GetStats construye el DashboardStatsDTO.
//
// Tres llamadas en paralelo:
//  1. GetCounts             → totales de picos, paletizados y productos por categoría
//  2. ListRecent(entrada,5) → RecentEntries
//  3. ListRecent(saida,5)   → RecentExits
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type countsResult struct {
		counts *entity.DashboardCounts
		err    error
	}
	type activityResult struct {
		logs []*entity.ActivityLog
		err  error
	}

	countsCh := make(chan countsResult, 1)
	entriesCh := make(chan activityResult, 1)
	exitsCh := make(chan activityResult, 1)

	go func() {
		c, err := uc.dashboardRepo.GetCounts(ctx)
		countsCh <- countsResult{c, err}
	}()
	go func() {
		logs, err := uc.activityRepo.ListRecent(ctx, entity.ActivityEntrada, dashboardRecentActivity)
		entriesCh <- activityResult{logs, err}
	}()
	go func() {
		logs, err := uc.activityRepo.ListRecent(ctx, entity.ActivitySaida, dashboardRecentActivity)
		exitsCh <- activityResult{logs, err}
	}()

	counts := <-countsCh
	entries := <-entriesCh
	exits := <-exitsCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", counts.err)
	}
	if entries.err != nil {
		return nil, fmt.Errorf("dashboard: entradas recientes: %w", entries.err)
	}
	if exits.err != nil {
		return nil, fmt.Errorf("dashboard: salidas recientes: %w", exits.err)
	}

	c := counts.counts
	if c == nil {
		c = &entity.DashboardCounts{}
	}
	return &dto.DashboardStatsDTO{
		TotalPicos:       c.TotalPicos,
		TotalPaletizados: c.TotalPaletizados,
		AltaRotacao:      c.AltaRotacao,
		BaixaRotacao:     c.BaixaRotacao,
		RecentEntries:    dto.FromActivityLogs(entries.logs),
		RecentExits:      dto.FromActivityLogs(exits.logs),
	}, nil
}
