package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ítem de inventario. ItemID apunta a Ingredient o a ProductionBatch según el tipo.
const (
	ItemTypeIngredient      = "ingredient"
	ItemTypeFinishedProduct = "finished_product"
)

// InventoryItem representa el stock actual de un ingrediente o de un lote terminado.
type InventoryItem struct {
	ID           string
	ItemType     string // ingredient | finished_product
	ItemID       string
	CurrentStock decimal.Decimal
	MinimumStock decimal.Decimal
	Location     string // opcional
	LastUpdated  time.Time
}

// IsLowStock indica stock bajo: current_stock <= minimum_stock.
func (i InventoryItem) IsLowStock() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinimumStock)
}

// IsValidItemType indica si t es un tipo de ítem conocido.
func IsValidItemType(t string) bool {
	return t == ItemTypeIngredient || t == ItemTypeFinishedProduct
}
