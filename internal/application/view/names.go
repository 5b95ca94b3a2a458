package view

import "github.com/jhoicas/produccion-dashboard/internal/domain/entity"

// Etiquetas para referencias que no se pueden resolver localmente.
const (
	UnknownIngredient = "Unknown Ingredient"
	UnknownBatch      = "Unknown Batch"
)

// Index búsqueda por ID sobre las colecciones de ingredientes y lotes.
type Index struct {
	ingredients map[string]entity.Ingredient
	batches     map[string]entity.ProductionBatch
}

// NewIndex indexa las colecciones de la instantánea.
func NewIndex(ingredients []entity.Ingredient, batches []entity.ProductionBatch) Index {
	ix := Index{
		ingredients: make(map[string]entity.Ingredient, len(ingredients)),
		batches:     make(map[string]entity.ProductionBatch, len(batches)),
	}
	for _, ing := range ingredients {
		ix.ingredients[ing.ID] = ing
	}
	for _, b := range batches {
		ix.batches[b.ID] = b
	}
	return ix
}

// ItemDisplayName resuelve item_id en la colección que indica item_type.
// "ingredient" busca en ingredientes; cualquier otro tipo busca en lotes.
func (ix Index) ItemDisplayName(item entity.InventoryItem) string {
	if item.ItemType == entity.ItemTypeIngredient {
		if ing, ok := ix.ingredients[item.ItemID]; ok {
			return ing.Name
		}
		return UnknownIngredient
	}
	if b, ok := ix.batches[item.ItemID]; ok {
		return batchLabel(b)
	}
	return UnknownBatch
}

func (ix Index) ingredient(id string) (entity.Ingredient, bool) {
	ing, ok := ix.ingredients[id]
	return ing, ok
}

func batchLabel(b entity.ProductionBatch) string {
	return "Batch " + b.BatchNumber
}
