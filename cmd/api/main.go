package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/pos-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/report"
	infraexcel "github.com/jhoicas/pos-dashboard-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/pos-dashboard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-dashboard-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pos-dashboard-api/internal/interfaces/http"
	"github.com/jhoicas/pos-dashboard-api/pkg/config"
	"github.com/jhoicas/pos-dashboard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.Report.Location().String()).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	itemRepo := postgres.NewOrderItemRepository(pool)
	crewRepo := postgres.NewCrewRepository(pool)
	loader := appanalytics.NewSnapshotLoader(orderRepo, itemRepo, crewRepo)
	tz := appanalytics.TimeSettings{Location: cfg.Report.Location()}

	// Refresco en vivo: LISTEN sales_changes → recalcular charts
	var live *appanalytics.LiveRefresher
	if cfg.Report.LiveRefresh {
		listener := postgres.NewChangeListener(pool, log.Named("listener"))
		live = appanalytics.NewLiveRefresher(loader, listener, tz, log.Named("live"))
		go live.Run(ctx)
	}

	dashboardUC := appanalytics.NewDashboardUseCase(loader, live, tz, log.Named("dashboard"))
	reportUC := appanalytics.NewReportUseCase(
		loader,
		report.Options{
			CurrencySymbol:     cfg.Report.CurrencySymbol,
			HighValueThreshold: cfg.Report.HighValueThreshold,
		},
		tz, log.Named("report"),
		infraexcel.NewWorkbookWriter(cfg.App.Name),
		infrapdf.NewMarotoReportGenerator(cfg.App.Name),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC:     dashboardUC,
		ReportUC:        reportUC,
		ReportOutputDir: cfg.Report.OutputDir,
		JWTSecret:       cfg.JWT.Secret,
		Logger:          log.Named("http"),
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
