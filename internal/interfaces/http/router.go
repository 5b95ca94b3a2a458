package http

import (
	"errors"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/produccion-dashboard/internal/application/dto"
	"github.com/jhoicas/produccion-dashboard/internal/application/ports"
	"github.com/jhoicas/produccion-dashboard/internal/application/store"
	"github.com/jhoicas/produccion-dashboard/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store       *store.DataStore
	Reports     ports.StockReportGenerator
	Renderer    *Renderer
	AppName     string
	ReportTitle string
	Log         *logger.Logger
	// SwaggerFile ruta del swagger.json; vacío deja /docs sin montar.
	SwaggerFile string
}

// NewApp crea la aplicación Fiber con recover, request id, log de acceso y todas las rutas.
func NewApp(deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ErrorHandler: errorHandler(deps.Log),
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(AccessLog(deps.Log))

	// Swagger UI: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: deps.SwaggerFile,
			Path:     "docs",
			Title:    deps.AppName,
		}))
	}

	Router(app, deps)
	return app
}

// Router registra las rutas del dashboard.
func Router(app *fiber.App, deps RouterDeps) {
	dashboard := NewDashboardHandler(deps.Store, deps.Renderer, deps.AppName)
	app.Get("/", dashboard.Page)
	app.Post("/refresh", dashboard.Refresh)
	app.Get("/health", dashboard.Health)
	app.Get("/api/snapshot", dashboard.Snapshot)

	ingredients := NewIngredientHandler(deps.Store, deps.Renderer, deps.AppName)
	app.Get("/ingredients", ingredients.Page)
	app.Post("/ingredients", ingredients.Create)

	batches := NewBatchHandler(deps.Store, deps.Renderer, deps.AppName)
	app.Get("/batches", batches.Page)
	app.Post("/batches", batches.Create)

	inventory := NewInventoryHandler(deps.Store, deps.Renderer, deps.AppName)
	app.Get("/inventory", inventory.Page)
	app.Post("/inventory", inventory.Create)
	app.Post("/inventory/item-type", inventory.ChangeItemType)

	report := NewReportHandler(deps.Store, deps.Reports, deps.ReportTitle, deps.Log)
	app.Get("/inventory/report.pdf", report.StockPDF)
}

func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}
		return c.Status(code).JSON(dto.ErrorResponse{Code: errorCode(code), Message: err.Error()})
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "INVALID_BODY"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return "INTERNAL"
	}
}
