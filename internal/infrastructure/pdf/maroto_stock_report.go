// Package pdf renderiza el reporte de stock del almacén.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Estoque – Reporte de stock  │  Fecha + usuario     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PICOS: Código | Descripción | Torre | Bases | Sueltas | Tot │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PALETIZADOS: Código | Descripción | Categoría | Cantidad    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Estoque-api/internal/application/report"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStockReportGenerator implementa report.StockReportGenerator usando Maroto v2.
type MarotoStockReportGenerator struct {
	appName string
}

// NewMarotoStockReportGenerator construye el generador.
func NewMarotoStockReportGenerator(appName string) *MarotoStockReportGenerator {
	if appName == "" {
		appName = "Estoque"
	}
	return &MarotoStockReportGenerator{appName: appName}
}

var _ report.StockReportGenerator = (*MarotoStockReportGenerator)(nil)

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReportGenerator) GenerateStockReport(_ context.Context, r *report.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.appName+" - Reporte de stock", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if r.IncludePicos {
		m.AddRows(sectionTitleRow(fmt.Sprintf("PICOS (%d)", len(r.Picos))))
		m.AddRows(picoHeaderRow())
		m.AddRows(picoRows(r.Picos)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}
	if r.IncludeStock {
		m.AddRows(sectionTitleRow(fmt.Sprintf("PALETIZADOS (%d)", len(r.Paletizados))))
		m.AddRows(stockHeaderRow())
		m.AddRows(stockRows(r.Paletizados)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(totalsRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoStockReportGenerator) headerRow(r *report.StockReport) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de stock", props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Usuario: "+nonEmpty(r.GeneratedBy, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func picoHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Código", 2, align.Left),
		headerCell("Descripción", 4, align.Left),
		headerCell("Torre", 1, align.Center),
		headerCell("Bases", 1, align.Right),
		headerCell("Sueltas", 2, align.Right),
		headerCell("Total", 2, align.Right),
	)
}

func picoRows(picos []*entity.PicoWithProduct) []core.Row {
	rows := make([]core.Row, 0, len(picos))
	for _, p := range picos {
		rows = append(rows, row.New(6).Add(
			cell(p.Product.Code, 2, align.Left),
			cell(p.Product.Description, 4, align.Left),
			cell(p.TowerLocation, 1, align.Center),
			cell(strconv.Itoa(p.Bases), 1, align.Right),
			cell(strconv.Itoa(p.LooseUnits), 2, align.Right),
			cell(formatThousands(p.TotalUnits), 2, align.Right),
		))
	}
	return rows
}

func stockHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Código", 2, align.Left),
		headerCell("Descripción", 5, align.Left),
		headerCell("Categoría", 3, align.Left),
		headerCell("Cantidad", 2, align.Right),
	)
}

func stockRows(stock []*entity.PaletizadoStockWithProduct) []core.Row {
	rows := make([]core.Row, 0, len(stock))
	for _, s := range stock {
		rows = append(rows, row.New(6).Add(
			cell(s.Product.Code, 2, align.Left),
			cell(s.Product.Description, 5, align.Left),
			cell(categoryLabel(s.Product.Category), 3, align.Left),
			cell(formatThousands(s.Quantity), 2, align.Right),
		))
	}
	return rows
}

func totalsRow(r *report.StockReport) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: 0})
	}
	c := col.New(4)
	v := col.New(2)
	if r.IncludePicos {
		c.Add(label("Unidades en picos:"))
		v.Add(value(formatThousands(r.TotalUnits)))
	}
	if r.IncludeStock {
		c.Add(label("Pallets completos:"))
		v.Add(value(formatThousands(r.TotalPallets)))
	}
	return row.New(14).Add(col.New(6), c, v)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func categoryLabel(category string) string {
	switch category {
	case entity.CategoryAltaRotacao:
		return "Alta rotação"
	case entity.CategoryBaixaRotacao:
		return "Baixa rotação"
	}
	return category
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		buf := make([]byte, 0, len(s)+len(s)/3)
		for i, ch := range []byte(s) {
			if i > 0 && (len(s)-i)%3 == 0 {
				buf = append(buf, '.')
			}
			buf = append(buf, ch)
		}
		s = string(buf)
	}
	if neg {
		return "-" + s
	}
	return s
}
