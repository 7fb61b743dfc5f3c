package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// DashboardHandler maneja los endpoints del dashboard y del historial de actividad.
type DashboardHandler struct {
	uc       *appanalytics.DashboardUseCase
	activity *appanalytics.ActivityUseCase
	errs     errorResponder
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, activity *appanalytics.ActivityUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, activity: activity, errs: errorResponder{log: log}}
}

// GetStats devuelve los contadores del almacén y la actividad reciente.
// GET /api/dashboard/stats
//
// Respuesta: DashboardStatsDTO (totalPicos, totalPaletizados, altaRotacao,
// baixaRotacao, recentEntries[5], recentExits[5]).
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(stats)
}

// ListActivity historial de movimientos, más reciente primero.
// GET /api/activity-logs?type=entrada|saida&limit=20
func (h *DashboardHandler) ListActivity(c *fiber.Ctx) error {
	out, err := h.activity.ListRecent(c.UserContext(), c.Query("type"), c.QueryInt("limit", 0))
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(out)
}
