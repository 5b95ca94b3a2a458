package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa una materia prima registrada en la API remota.
// ID y CreatedAt los asigna la API; el cliente nunca los genera.
type Ingredient struct {
	ID          string
	Name        string
	Unit        string          // kg, g, l, unidad...
	CostPerUnit decimal.Decimal // no negativo
	Supplier    string          // opcional
	CreatedAt   time.Time
}
