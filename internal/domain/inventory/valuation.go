// Package inventory contiene los cálculos de dominio sobre niveles de stock.
package inventory

import "github.com/shopspring/decimal"

// Shortfall cantidad que falta para volver al mínimo: max(minimum - current, 0).
func Shortfall(current, minimum decimal.Decimal) decimal.Decimal {
	gap := minimum.Sub(current)
	if gap.IsNegative() {
		return decimal.Zero
	}
	return gap
}

// StockValue valor del stock a costo unitario, redondeado a 2 decimales.
// Stock o costo negativos valen cero.
func StockValue(current, costPerUnit decimal.Decimal) decimal.Decimal {
	if current.IsNegative() || costPerUnit.IsNegative() {
		return decimal.Zero
	}
	return current.Mul(costPerUnit).Round(2)
}
