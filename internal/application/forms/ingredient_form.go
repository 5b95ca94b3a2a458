package forms

import (
	"fmt"

	"github.com/jhoicas/produccion-dashboard/internal/application/dto"
	"github.com/jhoicas/produccion-dashboard/internal/domain"
)

// IngredientForm valores crudos del formulario de ingredientes.
type IngredientForm struct {
	Name        string `form:"name"`
	Unit        string `form:"unit"`
	CostPerUnit string `form:"cost_per_unit"`
	Supplier    string `form:"supplier"` // opcional
}

// Validate convierte el formulario en CreateIngredientRequest.
// Devuelve FieldErrors (envuelto en domain.ErrInvalidInput) si algún campo es inválido.
func (f IngredientForm) Validate() (dto.CreateIngredientRequest, FieldErrors, error) {
	errs := FieldErrors{}
	name := errs.required("name", f.Name)
	unit := errs.required("unit", f.Unit)
	cost, _ := errs.amount("cost_per_unit", f.CostPerUnit, true)

	if !errs.Empty() {
		return dto.CreateIngredientRequest{}, errs, fmt.Errorf("%w: %w", domain.ErrInvalidInput, errs)
	}

	req := dto.CreateIngredientRequest{
		Name:        name,
		Unit:        unit,
		CostPerUnit: cost.InexactFloat64(),
	}
	if s := trimmed(f.Supplier); s != "" {
		req.Supplier = &s
	}
	return req, nil, nil
}
