// Command export_report genera el reporte de ventas del período actual y lo deja
// en REPORT_OUTPUT_DIR.
//
// Uso: go run ./cmd/export_report [day|week|month] [xlsx|pdf]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	appanalytics "github.com/jhoicas/pos-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/pos-dashboard-api/internal/application/dto"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/report"
	infraexcel "github.com/jhoicas/pos-dashboard-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/pos-dashboard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-dashboard-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-dashboard-api/pkg/config"
	"github.com/jhoicas/pos-dashboard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "export_report"})

	req := dto.ReportRequest{Mode: arg(1), Format: arg(2)}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	loader := appanalytics.NewSnapshotLoader(
		postgres.NewOrderRepository(pool),
		postgres.NewOrderItemRepository(pool),
		postgres.NewCrewRepository(pool),
	)
	uc := appanalytics.NewReportUseCase(
		loader,
		report.Options{
			CurrencySymbol:     cfg.Report.CurrencySymbol,
			HighValueThreshold: cfg.Report.HighValueThreshold,
		},
		appanalytics.TimeSettings{Location: cfg.Report.Location()},
		log,
		infraexcel.NewWorkbookWriter(cfg.App.Name),
		infrapdf.NewMarotoReportGenerator(cfg.App.Name),
	)

	out, err := uc.ExportToDir(ctx, req, cfg.Report.OutputDir)
	if err != nil {
		log.Error().Err(err).Str("mode", req.Mode).Str("format", req.Format).Msg("exportar reporte")
		pool.Close()
		os.Exit(1)
	}
	fmt.Println(out.Path)
}

func arg(i int) string {
	if len(os.Args) > i {
		return os.Args[i]
	}
	return ""
}
