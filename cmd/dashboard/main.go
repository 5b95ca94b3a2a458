package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/produccion-dashboard/internal/application/store"
	"github.com/jhoicas/produccion-dashboard/internal/infrastructure/apiclient"
	infrapdf "github.com/jhoicas/produccion-dashboard/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/produccion-dashboard/internal/interfaces/http"
	"github.com/jhoicas/produccion-dashboard/pkg/config"
	"github.com/jhoicas/produccion-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando dashboard")

	client := apiclient.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
	dataStore := store.NewDataStore(client, log)

	renderer, err := httpRouter.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas HTML")
	}

	swaggerFile := "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err != nil {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado; /docs deshabilitado")
		swaggerFile = ""
	}

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		Store:       dataStore,
		Reports:     infrapdf.NewMarotoReportGenerator(),
		Renderer:    renderer,
		AppName:     cfg.App.Name,
		ReportTitle: cfg.Report.Title,
		Log:         log,
		SwaggerFile: swaggerFile,
	})

	// Carga inicial; si la API no responde, las pestañas muestran el aviso y se puede reintentar.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 2*cfg.API.Timeout())
	if !dataStore.LoadAll(loadCtx) {
		log.Warn().Msg("carga inicial incompleta")
	}
	cancelLoad()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("dashboard detenido")
}
