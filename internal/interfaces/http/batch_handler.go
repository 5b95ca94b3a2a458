package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/produccion-dashboard/internal/application/forms"
	"github.com/jhoicas/produccion-dashboard/internal/application/store"
	"github.com/jhoicas/produccion-dashboard/internal/application/view"
)

// BatchHandler pestaña y formulario de lotes de producción.
type BatchHandler struct {
	store   *store.DataStore
	views   *Renderer
	appName string
}

// NewBatchHandler construye el handler.
func NewBatchHandler(s *store.DataStore, views *Renderer, appName string) *BatchHandler {
	return &BatchHandler{store: s, views: views, appName: appName}
}

// Page GET /batches
func (h *BatchHandler) Page(c *fiber.Ctx) error {
	form := view.FormState[forms.BatchForm]{Open: c.Query("form") == "open", Values: forms.NewBatchForm()}
	return h.render(c, fiber.StatusOK, form)
}

// Create POST /batches
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	in := forms.NewBatchForm()
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cuerpo inválido")
	}
	req, fieldErrs, err := in.Validate()
	if err != nil {
		return h.render(c, fiber.StatusUnprocessableEntity, view.FormState[forms.BatchForm]{
			Open: true, Values: in, Errors: fieldErrs,
		})
	}
	if !h.store.CreateBatch(c.UserContext(), req) {
		return h.render(c, fiber.StatusBadGateway, view.FormState[forms.BatchForm]{
			Open: true, Values: in, Failure: failureText(h.store, store.OpCreateBatch),
		})
	}
	return c.Redirect("/batches", fiber.StatusSeeOther)
}

func (h *BatchHandler) render(c *fiber.Ctx, status int, form view.FormState[forms.BatchForm]) error {
	return h.views.Render(c, status, pageBatches, view.BuildBatches(h.store.Snapshot(), h.appName, form))
}
