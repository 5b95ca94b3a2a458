package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/produccion-dashboard/internal/application/dto"
	"github.com/jhoicas/produccion-dashboard/internal/application/ports"
	"github.com/jhoicas/produccion-dashboard/internal/application/store"
	"github.com/jhoicas/produccion-dashboard/internal/application/view"
	"github.com/jhoicas/produccion-dashboard/pkg/logger"
	"github.com/jhoicas/produccion-dashboard/pkg/requestid"
)

// ReportHandler exporta el reporte de stock en PDF.
type ReportHandler struct {
	store *store.DataStore
	gen   ports.StockReportGenerator
	title string
	log   *logger.Logger
	now   func() time.Time
}

// NewReportHandler construye el handler.
func NewReportHandler(s *store.DataStore, gen ports.StockReportGenerator, title string, log *logger.Logger) *ReportHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportHandler{store: s, gen: gen, title: title, log: log, now: time.Now}
}

// StockPDF godoc
// @Summary      Reporte de stock en PDF
// @Tags         inventory
// @Produce      application/pdf
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /inventory/report.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	report := view.BuildStockReport(h.store.Snapshot(), h.title, h.now())
	pdf, err := h.gen.GenerateStockReport(c.UserContext(), report)
	if err != nil {
		h.log.Error().Err(err).Str("request_id", requestid.From(c.UserContext())).Msg("generar reporte de stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "REPORT_FAILED", Message: "no se pudo generar el reporte",
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-report.pdf"`)
	return c.Send(pdf)
}
