package forms

import (
	"fmt"
	"strings"

	"github.com/jhoicas/produccion-dashboard/internal/application/dto"
	"github.com/jhoicas/produccion-dashboard/internal/domain"
	"github.com/jhoicas/produccion-dashboard/internal/domain/entity"
)

// BatchForm valores crudos del formulario de lotes.
type BatchForm struct {
	BatchNumber      string `form:"batch_number"`
	ProductionDate   string `form:"production_date"`
	StartDate        string `form:"start_date"`
	StartTime        string `form:"start_time"`
	StopDate         string `form:"stop_date"`
	StopTime         string `form:"stop_time"`
	RunHours         string `form:"run_hours"`
	BreakHours       string `form:"break_hours"`
	TotalHours       string `form:"total_hours"`
	QuantityProduced string `form:"quantity_produced"`
	QualityGrade     string `form:"quality_grade"`
	Notes            string `form:"notes"`
}

// NewBatchForm formulario vacío con el grado A preseleccionado.
func NewBatchForm() BatchForm {
	return BatchForm{QualityGrade: entity.GradeA}
}

// Validate convierte el formulario en CreateBatchRequest.
// ingredients_used se envía siempre vacío.
func (f BatchForm) Validate() (dto.CreateBatchRequest, FieldErrors, error) {
	errs := FieldErrors{}
	req := dto.CreateBatchRequest{
		BatchNumber:     errs.required("batch_number", f.BatchNumber),
		ProductionDate:  errs.date("production_date", f.ProductionDate, true),
		StartDate:       errs.date("start_date", f.StartDate, false),
		StartTime:       errs.clock("start_time", f.StartTime),
		StopDate:        errs.date("stop_date", f.StopDate, false),
		StopTime:        errs.clock("stop_time", f.StopTime),
		RunHours:        errs.optionalAmount("run_hours", f.RunHours),
		BreakHours:      errs.optionalAmount("break_hours", f.BreakHours),
		TotalHours:      errs.optionalAmount("total_hours", f.TotalHours),
		IngredientsUsed: map[string]float64{},
		QualityGrade:    errs.oneOf("quality_grade", f.QualityGrade, entity.IsValidGrade),
		Notes:           strings.TrimSpace(f.Notes),
	}
	if qty, ok := errs.amount("quantity_produced", f.QuantityProduced, true); ok {
		req.QuantityProduced = qty.InexactFloat64()
	}

	if !errs.Empty() {
		return dto.CreateBatchRequest{}, errs, fmt.Errorf("%w: %w", domain.ErrInvalidInput, errs)
	}
	return req, nil, nil
}
