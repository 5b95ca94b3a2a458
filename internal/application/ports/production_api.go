package ports

import (
	"context"

	"github.com/jhoicas/produccion-dashboard/internal/application/dto"
	"github.com/jhoicas/produccion-dashboard/internal/domain/entity"
)

// ProductionAPI define el puerto de salida hacia la API remota de producción.
// El store solo conoce este contrato; los tests inyectan un fake.
// Cualquier fallo (red, decodificación o estado HTTP no 2xx) se devuelve envuelto
// en domain.ErrRequestFailed.
type ProductionAPI interface {
	ListIngredients(ctx context.Context) ([]entity.Ingredient, error)
	ListBatches(ctx context.Context) ([]entity.ProductionBatch, error)
	ListInventory(ctx context.Context) ([]entity.InventoryItem, error)
	GetDashboard(ctx context.Context) (*entity.DashboardSummary, error)

	// Los Create devuelven el registro creado, con ID y timestamp asignados por la API.
	CreateIngredient(ctx context.Context, in dto.CreateIngredientRequest) (*entity.Ingredient, error)
	CreateBatch(ctx context.Context, in dto.CreateBatchRequest) (*entity.ProductionBatch, error)
	CreateInventoryItem(ctx context.Context, in dto.CreateInventoryItemRequest) (*entity.InventoryItem, error)
}
