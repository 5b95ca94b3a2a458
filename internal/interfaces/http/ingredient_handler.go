package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/produccion-dashboard/internal/application/forms"
	"github.com/jhoicas/produccion-dashboard/internal/application/store"
	"github.com/jhoicas/produccion-dashboard/internal/application/view"
)

// IngredientHandler pestaña y formulario de ingredientes.
type IngredientHandler struct {
	store   *store.DataStore
	views   *Renderer
	appName string
}

// NewIngredientHandler construye el handler.
func NewIngredientHandler(s *store.DataStore, views *Renderer, appName string) *IngredientHandler {
	return &IngredientHandler{store: s, views: views, appName: appName}
}

// Page GET /ingredients  (?form=open muestra el formulario vacío)
func (h *IngredientHandler) Page(c *fiber.Ctx) error {
	form := view.FormState[forms.IngredientForm]{Open: c.Query("form") == "open"}
	return h.render(c, fiber.StatusOK, form)
}

// Create POST /ingredients
//
// Éxito → 303 a /ingredients con el formulario cerrado.
// Validación → 422 con los valores y errores por campo.
// Fallo remoto → 502 con el formulario abierto y el aviso del store.
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var in forms.IngredientForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cuerpo inválido")
	}
	req, fieldErrs, err := in.Validate()
	if err != nil {
		return h.render(c, fiber.StatusUnprocessableEntity, view.FormState[forms.IngredientForm]{
			Open: true, Values: in, Errors: fieldErrs,
		})
	}
	if !h.store.CreateIngredient(c.UserContext(), req) {
		return h.render(c, fiber.StatusBadGateway, view.FormState[forms.IngredientForm]{
			Open: true, Values: in, Failure: failureText(h.store, store.OpCreateIngredient),
		})
	}
	return c.Redirect("/ingredients", fiber.StatusSeeOther)
}

func (h *IngredientHandler) render(c *fiber.Ctx, status int, form view.FormState[forms.IngredientForm]) error {
	return h.views.Render(c, status, pageIngredients, view.BuildIngredients(h.store.Snapshot(), h.appName, form))
}
