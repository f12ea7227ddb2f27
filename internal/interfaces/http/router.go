package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/pos-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/pos-dashboard-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC     *appanalytics.DashboardUseCase
	ReportUC        *appanalytics.ReportUseCase
	ReportOutputDir string
	JWTSecret       string
	Logger          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (cualquier rol)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/chart", dashboardHandler.GetChart)
	dashboard.Get("/stats", dashboardHandler.GetStats)
	dashboard.Get("/best-sellers", dashboardHandler.GetBestSellers)
	dashboard.Get("/category-share", dashboardHandler.GetCategoryShare)
	dashboard.Get("/crew-ranking", dashboardHandler.GetCrewRanking)
	dashboard.Get("/orders", dashboardHandler.ListOrders)
	dashboard.Get("/orders/:id", dashboardHandler.GetOrder)

	// Reportes (admin, manager)
	reports := protected.Group("/reports", RequireRole(RoleAdmin, RoleManager))
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportOutputDir, deps.Logger)
	reports.Get("/sales", reportHandler.Download)
	reports.Post("/sales/export", reportHandler.Export)
}
