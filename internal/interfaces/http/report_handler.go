package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/pos-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/pos-dashboard-api/internal/application/dto"
	"github.com/jhoicas/pos-dashboard-api/pkg/logger"
)

// ReportHandler descarga y exportación del reporte de ventas.
type ReportHandler struct {
	uc        *appanalytics.ReportUseCase
	outputDir string
	log       *logger.Logger
}

// NewReportHandler construye el handler. outputDir es el destino de POST /export.
func NewReportHandler(uc *appanalytics.ReportUseCase, outputDir string, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, outputDir: outputDir, log: log}
}

// Download godoc
// @Summary      Descargar reporte de ventas
// @Description  Summary, Detailed Sales, Timeslot Sales y Profit Analysis del período actual.
//               Requiere rol admin o manager.
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        mode    query  string  false  "day | week | month (default day)"
// @Param        format  query  string  false  "xlsx | pdf (default xlsx)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return badParams(c, "")
	}

	out, err := h.uc.Render(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	h.log.Info().
		Str("user_id", GetUserID(c)).
		Str("store_id", GetStoreID(c)).
		Str("file", out.FileName).
		Msg("reporte descargado")

	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, out.FileName))
	return c.Send(out.Data)
}

// Export godoc
// @Summary      Exportar reporte de ventas al directorio del servidor
// @Description  Escribe el archivo en REPORT_OUTPUT_DIR (temporal + rename). Requiere rol admin o manager.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        mode    query  string  false  "day | week | month (default day)"
// @Param        format  query  string  false  "xlsx | pdf (default xlsx)"
// @Success      201  {object}  dto.ReportExportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/sales/export [post]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return badParams(c, "")
	}

	out, err := h.uc.ExportToDir(c.Context(), req, h.outputDir)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
