package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/seasafety-api/internal/application/insight"
	"github.com/jhoicas/seasafety-api/internal/application/inventory"
	"github.com/jhoicas/seasafety-api/internal/application/report"
	infraai "github.com/jhoicas/seasafety-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/seasafety-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/seasafety-api/internal/interfaces/http"
	"github.com/jhoicas/seasafety-api/pkg/config"
	"github.com/jhoicas/seasafety-api/pkg/logger"
	"github.com/jhoicas/seasafety-api/pkg/metrics"
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
		Str("storage", cfg.Storage.Driver).
		Str("ai_provider", cfg.AI.Provider).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	kv, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de snapshots")
	}
	defer closeStorage()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	snapshots := inventory.NewSnapshotStore(kv, cfg.Storage.KeyPrefix, log.Component("snapshots"))
	inventoryUC := inventory.NewUseCase(snapshots,
		inventory.WithSystemUser(cfg.Ledger.SystemUser),
		inventory.WithLogger(log.Component("inventory")),
		inventory.WithMetrics(m),
	)
	inventoryUC.Load(ctx)

	insightUC := insight.NewUseCase(
		infraai.NewFromConfig(cfg.AI),
		insight.Config{Timeout: cfg.AI.Timeout, FallbackMessage: cfg.AI.FallbackMessage},
		log.Component("insight"),
		m,
	)

	// PDF: reportes de inventario y movimientos
	reportUC := report.NewUseCase(inventoryUC, infrapdf.NewMarotoReportGenerator(time.Local))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.AI.Timeout + 10*time.Second, // POST /api/insights espera al LLM
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http"), m))

	// Swagger UI en local: http://localhost:<port>/docs (solo si existe el archivo generado)
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "SeaSafety API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Inventory:     inventoryUC,
		Insight:       insightUC,
		Report:        reportUC,
		StorageDriver: cfg.Storage.Driver,
		Metrics:       adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		JWTSecret:     cfg.JWT.Secret,
	})

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

	log.Info().Msg("aplicación detenida")
}
