package dto

// CreateIngredientRequest body de POST /api/ingredients en la API remota.
// Los montos viajan como números JSON (no como strings de decimal).
type CreateIngredientRequest struct {
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	CostPerUnit float64 `json:"cost_per_unit"`
	Supplier    *string `json:"supplier,omitempty"` // nil = ausente
}
