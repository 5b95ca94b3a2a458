package view

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/produccion-dashboard/internal/application/dto"
	"github.com/jhoicas/produccion-dashboard/internal/application/store"
	"github.com/jhoicas/produccion-dashboard/internal/domain/entity"
	"github.com/jhoicas/produccion-dashboard/internal/domain/inventory"
)

// BuildStockReport arma el reporte de stock a partir de la instantánea; los ítems bajos van primero.
// El valor se calcula solo para ingredientes cuyo costo unitario se conoce.
func BuildStockReport(snap store.Snapshot, title string, now time.Time) dto.StockReportDTO {
	ix := NewIndex(snap.Ingredients, snap.Batches)
	report := dto.StockReportDTO{Title: title, GeneratedAt: now}

	total := decimal.Zero
	low := make([]dto.StockReportRow, 0)
	ok := make([]dto.StockReportRow, 0, len(snap.Inventory))
	for _, it := range snap.Inventory {
		row := dto.StockReportRow{
			Name:         ix.ItemDisplayName(it),
			ItemType:     ItemTypeLabel(it.ItemType),
			Location:     orDash(it.Location),
			CurrentStock: FormatAmount(it.CurrentStock),
			MinimumStock: FormatAmount(it.MinimumStock),
			Shortfall:    emptyCell,
			Value:        emptyCell,
			Status:       StockBadge(it).Label,
			Low:          it.IsLowStock(),
		}
		if gap := inventory.Shortfall(it.CurrentStock, it.MinimumStock); gap.IsPositive() {
			row.Shortfall = FormatAmount(gap)
		}
		if it.ItemType == entity.ItemTypeIngredient {
			if ing, found := ix.ingredient(it.ItemID); found {
				value := inventory.StockValue(it.CurrentStock, ing.CostPerUnit)
				total = total.Add(value)
				row.Value = FormatMoney(value)
			}
		}
		if row.Low {
			low = append(low, row)
		} else {
			ok = append(ok, row)
		}
	}
	report.LowStockCount = len(low)
	report.TotalValue = FormatMoney(total)
	report.Rows = append(low, ok...)
	return report
}
