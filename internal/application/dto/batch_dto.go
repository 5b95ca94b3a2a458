package dto

// CreateBatchRequest body de POST /api/batches en la API remota.
type CreateBatchRequest struct {
	BatchNumber      string   `json:"batch_number"`
	ProductionDate   string   `json:"production_date"`
	StartDate        string   `json:"start_date,omitempty"`
	StartTime        string   `json:"start_time,omitempty"`
	StopDate         string   `json:"stop_date,omitempty"`
	StopTime         string   `json:"stop_time,omitempty"`
	RunHours         *float64 `json:"run_hours,omitempty"`
	BreakHours       *float64 `json:"break_hours,omitempty"`
	TotalHours       *float64 `json:"total_hours,omitempty"`
	QuantityProduced float64  `json:"quantity_produced"`
	// IngredientsUsed siempre se envía como {} (no hay UI que lo llene).
	IngredientsUsed map[string]float64 `json:"ingredients_used"`
	QualityGrade    string             `json:"quality_grade"`
	Notes           string             `json:"notes,omitempty"`
}
