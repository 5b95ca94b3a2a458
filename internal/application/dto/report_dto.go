package dto

import "time"

// StockReportDTO datos ya formateados para el reporte PDF de stock.
type StockReportDTO struct {
	Title         string
	GeneratedAt   time.Time
	LowStockCount int
	TotalValue    string // valor del stock de ingredientes a costo unitario
	Rows          []StockReportRow
}

// StockReportRow una fila del reporte (un ítem de inventario).
type StockReportRow struct {
	Name         string
	ItemType     string
	Location     string
	CurrentStock string
	MinimumStock string
	Shortfall    string // faltante para llegar al mínimo
	Value        string // solo ingredientes con costo conocido
	Status       string // "Low Stock" | "In Stock"
	Low          bool
}
