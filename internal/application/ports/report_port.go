package ports

import (
	"context"

	"github.com/jhoicas/produccion-dashboard/internal/application/dto"
)

// StockReportGenerator genera la representación PDF del reporte de stock.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, report dto.StockReportDTO) ([]byte, error)
}
