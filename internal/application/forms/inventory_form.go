package forms

import (
	"fmt"

	"github.com/jhoicas/produccion-dashboard/internal/application/dto"
	"github.com/jhoicas/produccion-dashboard/internal/domain"
	"github.com/jhoicas/produccion-dashboard/internal/domain/entity"
)

// InventoryForm valores crudos del formulario de inventario.
// ItemType decide qué colección alimenta el selector de ItemID.
type InventoryForm struct {
	ItemType     string `form:"item_type"`
	ItemID       string `form:"item_id"`
	CurrentStock string `form:"current_stock"`
	MinimumStock string `form:"minimum_stock"`
	Location     string `form:"location"`
}

// NewInventoryForm formulario vacío con tipo "ingredient".
func NewInventoryForm() InventoryForm {
	return InventoryForm{ItemType: entity.ItemTypeIngredient}
}

// WithItemType cambia el tipo de ítem. Si el tipo cambia, el ItemID elegido se limpia.
func (f InventoryForm) WithItemType(itemType string) InventoryForm {
	if f.ItemType != itemType {
		f.ItemID = ""
	}
	f.ItemType = itemType
	return f
}

// Validate convierte el formulario en CreateInventoryItemRequest.
func (f InventoryForm) Validate() (dto.CreateInventoryItemRequest, FieldErrors, error) {
	errs := FieldErrors{}
	req := dto.CreateInventoryItemRequest{
		ItemType: errs.oneOf("item_type", f.ItemType, entity.IsValidItemType),
		ItemID:   errs.required("item_id", f.ItemID),
		Location: trimmed(f.Location),
	}
	if cur, ok := errs.amount("current_stock", f.CurrentStock, true); ok {
		req.CurrentStock = cur.InexactFloat64()
	}
	if minimum, ok := errs.amount("minimum_stock", f.MinimumStock, true); ok {
		req.MinimumStock = minimum.InexactFloat64()
	}

	if !errs.Empty() {
		return dto.CreateInventoryItemRequest{}, errs, fmt.Errorf("%w: %w", domain.ErrInvalidInput, errs)
	}
	return req, nil, nil
}
