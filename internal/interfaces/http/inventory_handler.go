package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/produccion-dashboard/internal/application/forms"
	"github.com/jhoicas/produccion-dashboard/internal/application/store"
	"github.com/jhoicas/produccion-dashboard/internal/application/view"
	"github.com/jhoicas/produccion-dashboard/internal/domain/entity"
)

// InventoryHandler pestaña y formulario de inventario.
type InventoryHandler struct {
	store   *store.DataStore
	views   *Renderer
	appName string
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(s *store.DataStore, views *Renderer, appName string) *InventoryHandler {
	return &InventoryHandler{store: s, views: views, appName: appName}
}

// Page GET /inventory  (?form=open&item_type=finished_product)
func (h *InventoryHandler) Page(c *fiber.Ctx) error {
	values := forms.NewInventoryForm()
	if t := c.Query("item_type"); entity.IsValidItemType(t) {
		values = values.WithItemType(t)
	}
	return h.render(c, fiber.StatusOK, view.FormState[forms.InventoryForm]{
		Open: c.Query("form") == "open", Values: values,
	})
}

// ChangeItemType POST /inventory/item-type
//
// Vuelve a pintar el formulario con el nuevo tipo; el ítem elegido se limpia si el tipo cambió.
func (h *InventoryHandler) ChangeItemType(c *fiber.Ctx) error {
	var in forms.InventoryForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cuerpo inválido")
	}
	next := in.ItemType
	if !entity.IsValidItemType(next) {
		next = entity.ItemTypeIngredient
	}
	if prev := c.FormValue("previous_item_type"); prev != "" {
		in.ItemType = prev
	}
	return h.render(c, fiber.StatusOK, view.FormState[forms.InventoryForm]{
		Open: true, Values: in.WithItemType(next),
	})
}

// Create POST /inventory
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in forms.InventoryForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cuerpo inválido")
	}
	req, fieldErrs, err := in.Validate()
	if err != nil {
		return h.render(c, fiber.StatusUnprocessableEntity, view.FormState[forms.InventoryForm]{
			Open: true, Values: in, Errors: fieldErrs,
		})
	}
	if !h.store.CreateInventoryItem(c.UserContext(), req) {
		return h.render(c, fiber.StatusBadGateway, view.FormState[forms.InventoryForm]{
			Open: true, Values: in, Failure: failureText(h.store, store.OpCreateInventory),
		})
	}
	return c.Redirect("/inventory", fiber.StatusSeeOther)
}

func (h *InventoryHandler) render(c *fiber.Ctx, status int, form view.FormState[forms.InventoryForm]) error {
	return h.views.Render(c, status, pageInventory, view.BuildInventory(h.store.Snapshot(), h.appName, form))
}
