// Package report genera el reporte imprimible del stock actual.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// StockReportUseCase reúne picos y stock paletizado y delega el render en el generador.
type StockReportUseCase struct {
	picoRepo  repository.PicoRepository
	stockRepo repository.PaletizadoStockRepository
	generator StockReportGenerator
	now       func() time.Time
}

// NewStockReportUseCase construye el caso de uso inyectando sus dependencias.
func NewStockReportUseCase(
	picoRepo repository.PicoRepository,
	stockRepo repository.PaletizadoStockRepository,
	generator StockReportGenerator,
) *StockReportUseCase {
	return &StockReportUseCase{
		picoRepo:  picoRepo,
		stockRepo: stockRepo,
		generator: generator,
		now:       time.Now,
	}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido.
// itemType vacío incluye ambos tipos; "pico" o "paletizado" filtran.
//
// Retorna domain.ErrInvalidInput si itemType no es reconocido.
func (uc *StockReportUseCase) Generate(ctx context.Context, itemType, generatedBy string) (pdfBytes []byte, filename string, err error) {
	r := &StockReport{GeneratedAt: uc.now(), GeneratedBy: generatedBy}
	switch itemType {
	case "":
		r.IncludePicos, r.IncludeStock = true, true
	case entity.ItemTypePico:
		r.IncludePicos = true
	case entity.ItemTypePaletizado:
		r.IncludeStock = true
	default:
		return nil, "", fmt.Errorf("%w: itemType debe ser pico o paletizado", domain.ErrInvalidInput)
	}

	if r.IncludePicos {
		r.Picos, err = uc.picoRepo.ListWithProduct(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("reporte: listar picos: %w", err)
		}
		for _, p := range r.Picos {
			r.TotalUnits += p.TotalUnits
		}
	}
	if r.IncludeStock {
		r.Paletizados, err = uc.stockRepo.ListWithProduct(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("reporte: listar stock paletizado: %w", err)
		}
		for _, s := range r.Paletizados {
			r.TotalPallets += s.Quantity
		}
	}

	pdfBytes, err = uc.generator.GenerateStockReport(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("estoque_%s.pdf", r.GeneratedAt.Format("20060102_1504"))
	return pdfBytes, filename, nil
}
