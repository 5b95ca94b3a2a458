package entity

// DashboardSummary agregado calculado por la API remota. El cliente lo trata como solo lectura.
type DashboardSummary struct {
	TotalIngredients    int
	TotalBatches        int
	TotalInventoryItems int
	LowStockCount       int
	LowStockItems       []InventoryItem
	RecentBatches       []ProductionBatch
}
