package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/pos-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/pos-dashboard-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del dashboard de ventas.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetChart godoc
// @Summary      Chart comparativo de ventas
// @Description  Ventas por bucket del período actual vs el de comparación (hoy/ayer por hora
//               8AM-5PM, esta semana/la anterior por día, este mes/el anterior por día del mes).
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        mode     query  string  false  "day | week | month (default day)"
// @Param        current  query  bool    false  "Incluir serie actual (default true)"
// @Param        compare  query  bool    false  "Incluir serie de comparación (default true)"
// @Success      200  {object}  dto.SalesChartDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/chart [get]
func (h *DashboardHandler) GetChart(c *fiber.Ctx) error {
	req := dto.ChartRequest{Mode: c.Query("mode")}
	var err error
	if req.Current, err = optionalBool(c, "current"); err != nil {
		return badParams(c, "current")
	}
	if req.Compare, err = optionalBool(c, "compare"); err != nil {
		return badParams(c, "compare")
	}

	chart, err := h.uc.GetChart(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(chart)
}

// GetStats godoc
// @Summary      Tarjetas de KPIs
// @Description  Ventas totales, ítems vendidos, órdenes únicas y ticket promedio del período actual.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        mode  query  string  false  "day | week | month (default day)"
// @Success      200  {object}  dto.SalesStatsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context(), c.Query("mode"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// GetBestSellers godoc
// @Summary      Top productos de una categoría
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  true   "Categoría (sin distinguir mayúsculas)"
// @Param        limit     query  int     false  "Máx. productos (default 6)"
// @Success      200  {object}  dto.BestSellersDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/best-sellers [get]
func (h *DashboardHandler) GetBestSellers(c *fiber.Ctx) error {
	var req dto.BestSellersRequest
	if err := c.QueryParser(&req); err != nil {
		return badParams(c, "")
	}
	out, err := h.uc.GetBestSellers(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCategoryShare godoc
// @Summary      Participación por categoría
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryShareDTO
// @Router       /api/dashboard/category-share [get]
func (h *DashboardHandler) GetCategoryShare(c *fiber.Ctx) error {
	out, err := h.uc.GetCategoryShare(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCrewRanking godoc
// @Summary      Leaderboard de crew
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Estado de orden a contar (default Completed)"
// @Success      200  {array}  dto.CrewRankingDTO
// @Router       /api/dashboard/crew-ranking [get]
func (h *DashboardHandler) GetCrewRanking(c *fiber.Ctx) error {
	out, err := h.uc.GetCrewRanking(c.Context(), dto.CrewRankingRequest{Status: c.Query("status")})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListOrders godoc
// @Summary      Órdenes, más recientes primero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.OrderListDTO
// @Router       /api/dashboard/orders [get]
func (h *DashboardHandler) ListOrders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badParams(c, "")
	}
	out, err := h.uc.ListOrders(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetOrder godoc
// @Summary      Detalle de una orden
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "order_id"
// @Success      200  {object}  dto.OrderDetailDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/orders/{id} [get]
func (h *DashboardHandler) GetOrder(c *fiber.Ctx) error {
	out, err := h.uc.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func optionalBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func badParams(c *fiber.Ctx, param string) error {
	msg := "parámetros de consulta inválidos"
	if param != "" {
		msg = "parámetro inválido: " + param
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: msg})
}
