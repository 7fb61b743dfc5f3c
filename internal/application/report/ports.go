package report

import (
	"context"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// StockReport datos de entrada del reporte de stock. Picos o Paletizados pueden
// venir vacíos cuando el reporte se filtra por tipo de ítem.
type StockReport struct {
	GeneratedAt  time.Time
	GeneratedBy  string
	IncludePicos bool
	IncludeStock bool
	Picos        []*entity.PicoWithProduct
	Paletizados  []*entity.PaletizadoStockWithProduct
	// Suma de TotalUnits de los picos.
	TotalUnits   int
	// Suma de Quantity del stock paletizado.
	TotalPallets int
}

// StockReportGenerator puerto de salida que renderiza el reporte (PDF).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, report *StockReport) ([]byte, error)
}
