package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Grados de calidad de un lote.
const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
)

// QualityGrades lista los grados aceptados por el formulario de lotes.
var QualityGrades = []string{GradeA, GradeB, GradeC}

// ProductionBatch representa un lote (corrida) de producto terminado.
// Los campos de tiempo extendidos son opcionales; las horas nulas se guardan como nil.
type ProductionBatch struct {
	ID               string
	BatchNumber      string
	ProductionDate   string // YYYY-MM-DD
	StartDate        string // opcional, YYYY-MM-DD
	StartTime        string // opcional, HH:MM
	StopDate         string
	StopTime         string
	RunHours         *decimal.Decimal
	BreakHours       *decimal.Decimal
	TotalHours       *decimal.Decimal
	QuantityProduced decimal.Decimal
	// IngredientsUsed mapea ingredient_id -> cantidad usada.
	// El formulario actual siempre lo envía vacío.
	IngredientsUsed map[string]decimal.Decimal
	QualityGrade    string
	Notes           string
	CreatedAt       time.Time
}

// IsValidGrade indica si g es uno de los grados aceptados (A/B/C).
func IsValidGrade(g string) bool {
	for _, v := range QualityGrades {
		if v == g {
			return true
		}
	}
	return false
}
