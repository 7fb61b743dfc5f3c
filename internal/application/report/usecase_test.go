package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/report"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/memory"
)

// captureGenerator guarda el último reporte recibido.
type captureGenerator struct {
	last *report.StockReport
}

func (g *captureGenerator) GenerateStockReport(_ context.Context, r *report.StockReport) ([]byte, error) {
	g.last = r
	return []byte("%PDF-fake"), nil
}

func seed(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	now := time.Now()
	p := &entity.Product{ID: "p1", Code: "P-001", Description: "Arroz", UnitsPerBase: 6, Category: entity.CategoryAltaRotacao, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Products().Create(ctx, p))
	require.NoError(t, store.Picos().Create(ctx, &entity.Pico{ID: "k1", ProductID: "p1", Bases: 2, LooseUnits: 1, TotalUnits: 13, TowerLocation: "01", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, store.Picos().Create(ctx, &entity.Pico{ID: "k2", ProductID: "p1", Bases: 1, TotalUnits: 6, TowerLocation: "02", CreatedAt: now, UpdatedAt: now}))
	_, err := store.Stock().AddQuantity(ctx, "p1", 4)
	require.NoError(t, err)
	return store
}

func TestGenerate_Totales(t *testing.T) {
	store := seed(t)
	gen := &captureGenerator{}
	uc := report.NewStockReportUseCase(store.Picos(), store.Stock(), gen)

	pdf, filename, err := uc.Generate(context.Background(), "", "Admin")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	assert.Regexp(t, `^estoque_\d{8}_\d{4}\.pdf$`, filename)

	require.NotNil(t, gen.last)
	assert.True(t, gen.last.IncludePicos)
	assert.True(t, gen.last.IncludeStock)
	assert.Equal(t, 19, gen.last.TotalUnits)
	assert.Equal(t, 4, gen.last.TotalPallets)
	assert.Equal(t, "Admin", gen.last.GeneratedBy)
}

func TestGenerate_FiltroPorTipo(t *testing.T) {
	store := seed(t)
	gen := &captureGenerator{}
	uc := report.NewStockReportUseCase(store.Picos(), store.Stock(), gen)

	_, _, err := uc.Generate(context.Background(), entity.ItemTypePaletizado, "")
	require.NoError(t, err)
	assert.False(t, gen.last.IncludePicos)
	assert.Empty(t, gen.last.Picos)
	assert.Len(t, gen.last.Paletizados, 1)

	_, _, err = uc.Generate(context.Background(), "caja", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
