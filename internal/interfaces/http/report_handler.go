package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/report"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// ReportHandler descarga de reportes imprimibles.
type ReportHandler struct {
	uc   *report.StockReportUseCase
	errs errorResponder
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.StockReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, errs: errorResponder{log: log}}
}

// StockPDF godoc
// @Summary      Reporte de stock en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        itemType  query  string  false  "pico | paletizado (vacío = ambos)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	generatedBy := ""
	if u := GetUser(c); u != nil {
		generatedBy = u.Name
	}
	pdf, filename, err := h.uc.Generate(c.UserContext(), c.Query("itemType"), generatedBy)
	if err != nil {
		return h.errs.respond(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
