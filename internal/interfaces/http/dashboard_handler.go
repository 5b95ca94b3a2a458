package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/produccion-dashboard/internal/application/dto"
	"github.com/jhoicas/produccion-dashboard/internal/application/store"
	"github.com/jhoicas/produccion-dashboard/internal/application/view"
)

// DashboardHandler pestaña de resumen, recarga manual y endpoints de estado.
type DashboardHandler struct {
	store   *store.DataStore
	views   *Renderer
	appName string
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(s *store.DataStore, views *Renderer, appName string) *DashboardHandler {
	return &DashboardHandler{store: s, views: views, appName: appName}
}

// Page GET /
func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	return h.views.Render(c, fiber.StatusOK, pageDashboard, view.BuildDashboard(h.store.Snapshot(), h.appName))
}

// Refresh godoc
// @Summary      Recargar las colecciones desde la API remota
// @Tags         status
// @Accept       x-www-form-urlencoded
// @Param        return_to  formData  string  false  "Pestaña de destino"
// @Success      303
// @Router       /refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	h.store.LoadAll(c.UserContext())
	return c.Redirect(tabPath(c.FormValue("return_to")), fiber.StatusSeeOther)
}

// Health godoc
// @Summary      Estado del dashboard
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
func (h *DashboardHandler) Health(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": h.appName,
		"loaded":  !snap.LoadedAt.IsZero(),
		"notices": len(snap.Notices),
	})
}

// Snapshot godoc
// @Summary      Conteos del store y avisos vigentes
// @Tags         status
// @Produce      json
// @Success      200  {object}  dto.SnapshotResponse
// @Router       /api/snapshot [get]
func (h *DashboardHandler) Snapshot(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	out := dto.SnapshotResponse{
		Ingredients:     len(snap.Ingredients),
		Batches:         len(snap.Batches),
		InventoryItems:  len(snap.Inventory),
		LowStockCount:   snap.Dashboard.LowStockCount,
		LowStockItemIDs: make([]string, 0, len(snap.Dashboard.LowStockItems)),
		Notices:         make([]dto.NoticeDTO, 0, len(snap.Notices)),
	}
	if !snap.LoadedAt.IsZero() {
		loaded := snap.LoadedAt
		out.LoadedAt = &loaded
	}
	for _, it := range snap.Dashboard.LowStockItems {
		out.LowStockItemIDs = append(out.LowStockItemIDs, it.ID)
	}
	for _, n := range snap.Notices {
		out.Notices = append(out.Notices, dto.NoticeDTO{Op: n.Op, Message: n.Message, At: n.At})
	}
	return c.JSON(out)
}

// tabPath traduce el nombre de pestaña a su ruta; cualquier otro valor vuelve al resumen.
func tabPath(tab string) string {
	switch tab {
	case view.TabIngredients:
		return "/ingredients"
	case view.TabBatches:
		return "/batches"
	case view.TabInventory:
		return "/inventory"
	default:
		return "/"
	}
}

// failureText mensaje del aviso vigente de op, o un texto genérico.
func failureText(s *store.DataStore, op string) string {
	if n, ok := s.Notice(op); ok {
		return n.Message
	}
	return "The request could not be completed. Please try again."
}
