package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/pos-dashboard-api/internal/application/dto"
	"github.com/jhoicas/pos-dashboard-api/internal/domain"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/period"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/sales"
	"github.com/jhoicas/pos-dashboard-api/pkg/logger"
)

const (
	defaultCrewStatus = entity.OrderStatusCompleted
	maxBestSellers    = 50
)

// DashboardUseCase arma las respuestas del dashboard a partir del snapshot de ventas.
//
// Fuente de datos: SnapshotLoader (lecturas completas, read-only). Si hay un LiveRefresher
// con un chart vigente para el modo pedido y el instante de la petición, el chart sale de
// ahí sin releer la DB.
type DashboardUseCase struct {
	loader *SnapshotLoader
	live   *LiveRefresher
	tz     TimeSettings
	log    *logger.Logger
}

// NewDashboardUseCase construye el caso de uso. live puede ser nil.
func NewDashboardUseCase(loader *SnapshotLoader, live *LiveRefresher, tz TimeSettings, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{loader: loader, live: live, tz: tz, log: log}
}

// GetChart series comparativas del modo pedido, con las series ocultas omitidas.
func (uc *DashboardUseCase) GetChart(ctx context.Context, req dto.ChartRequest) (*dto.SalesChartDTO, error) {
	mode, err := period.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	visible := sales.Visibility{Current: boolOr(req.Current, true), Compare: boolOr(req.Compare, true)}

	now := uc.tz.now()
	if uc.live != nil {
		if series, gen, ok := uc.live.Latest(mode, now); ok {
			out := chartDTO(mode, series, visible)
			out.Generation = gen
			return out, nil
		}
	}

	snap, err := uc.loader.Load(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("mode", string(mode)).Msg("dashboard: chart")
		return nil, fmt.Errorf("dashboard.GetChart: %w", err)
	}
	series := sales.Aggregate(snap, period.Resolve(mode, now))
	return chartDTO(mode, series, visible), nil
}

// GetStats KPIs del período actual del modo (hoy, semana o mes en curso).
func (uc *DashboardUseCase) GetStats(ctx context.Context, rawMode string) (*dto.SalesStatsDTO, error) {
	mode, err := period.ParseMode(rawMode)
	if err != nil {
		return nil, err
	}
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("mode", string(mode)).Msg("dashboard: stats")
		return nil, fmt.Errorf("dashboard.GetStats: %w", err)
	}

	r := period.Resolve(mode, uc.tz.now()).Range()
	k := sales.Summarize(sales.FilterByRange(snap, r))
	return &dto.SalesStatsDTO{
		Mode:              string(mode),
		DateRange:         r.Label,
		TotalSales:        k.TotalSales,
		TotalItemsSold:    k.TotalItemsSold,
		TotalOrders:       k.TotalOrders,
		UniqueOrders:      k.UniqueOrderCount,
		AverageOrderValue: k.AverageOrderValue.Round(2),
		BestProduct:       productDTO(k.BestProduct),
		UniqueProducts:    k.UniqueProducts,
		BestCategory:      k.BestCategory.Name,
		BestCategoryQty:   k.BestCategory.Quantity,
		StatusBreakdown:   countDTOs(k.StatusBreakdown),
		TypeBreakdown:     countDTOs(k.TypeBreakdown),
	}, nil
}

// GetBestSellers top de productos de una categoría sobre todas las líneas registradas.
func (uc *DashboardUseCase) GetBestSellers(ctx context.Context, req dto.BestSellersRequest) (*dto.BestSellersDTO, error) {
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("%w: category es obligatorio", domain.ErrInvalidInput)
	}
	limit := req.Limit
	if limit <= 0 {
		limit = sales.DefaultBestSellersLimit
	}
	if limit > maxBestSellers {
		limit = maxBestSellers
	}

	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetBestSellers: %w", err)
	}
	stats := sales.BestSellers(snap.Items, req.Category, limit)
	out := &dto.BestSellersDTO{Category: req.Category, Products: make([]dto.ProductStatDTO, 0, len(stats))}
	for _, p := range stats {
		out.Products = append(out.Products, productDTO(p))
	}
	return out, nil
}

// GetCategoryShare participación de cada categoría en las unidades vendidas.
func (uc *DashboardUseCase) GetCategoryShare(ctx context.Context) ([]dto.CategoryShareDTO, error) {
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetCategoryShare: %w", err)
	}
	shares := sales.CategoryShares(snap.Items)
	out := make([]dto.CategoryShareDTO, 0, len(shares))
	for _, s := range shares {
		out = append(out, dto.CategoryShareDTO{Category: s.Name, Quantity: s.Quantity, Percent: s.Percent})
	}
	return out, nil
}

// GetCrewRanking leaderboard de crew por órdenes en el estado pedido (default Completed).
func (uc *DashboardUseCase) GetCrewRanking(ctx context.Context, req dto.CrewRankingRequest) ([]dto.CrewRankingDTO, error) {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = defaultCrewStatus
	}
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetCrewRanking: %w", err)
	}
	ranking := sales.CrewRanking(snap.Crew, snap.Orders, status)
	out := make([]dto.CrewRankingDTO, 0, len(ranking))
	for _, c := range ranking {
		out = append(out, dto.CrewRankingDTO{CrewID: c.CrewID, Name: c.Name, Orders: c.Orders})
	}
	return out, nil
}

// ListOrders página de órdenes, más recientes primero; sin created_at van al final.
func (uc *DashboardUseCase) ListOrders(ctx context.Context, page dto.PageRequest) (*dto.OrderListDTO, error) {
	page.DefaultPage()
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListOrders: %w", err)
	}

	details := sales.OrderDetails(snap)
	sort.SliceStable(details, func(i, j int) bool {
		return newer(details[i].Order.CreatedAt, details[j].Order.CreatedAt)
	})

	total := len(details)
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)

	loc := uc.tz.now().Location()
	out := &dto.OrderListDTO{
		Orders: make([]dto.OrderSummaryDTO, 0, end-start),
		Page:   dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, d := range details[start:end] {
		out.Orders = append(out.Orders, orderSummaryDTO(d, loc))
	}
	return out, nil
}

// GetOrder detalle de una orden con sus líneas. domain.ErrNotFound si no existe.
func (uc *DashboardUseCase) GetOrder(ctx context.Context, orderID string) (*dto.OrderDetailDTO, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, fmt.Errorf("%w: order_id vacío", domain.ErrInvalidInput)
	}
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetOrder: %w", err)
	}
	d, ok := sales.FindOrder(snap, orderID)
	if !ok {
		return nil, fmt.Errorf("orden %s: %w", orderID, domain.ErrNotFound)
	}

	out := &dto.OrderDetailDTO{
		OrderSummaryDTO: orderSummaryDTO(d, uc.tz.now().Location()),
		Items:           make([]dto.OrderItemDTO, 0, len(d.Items)),
	}
	for _, it := range d.Items {
		out.Items = append(out.Items, dto.OrderItemDTO{
			ItemName: it.ItemName,
			Category: it.Category,
			Quantity: it.Qty(),
			Price:    it.UnitPrice(),
			Subtotal: it.LineTotal(),
		})
	}
	return out, nil
}

// ── Mapeo a DTO ───────────────────────────────────────────────────────────────

func chartDTO(mode period.Mode, s sales.Series, v sales.Visibility) *dto.SalesChartDTO {
	current, compare := s.Totals()
	shown := s.Visible(v)
	return &dto.SalesChartDTO{
		Mode:          string(mode),
		Labels:        shown.Labels,
		CurrentSeries: shown.Current,
		CompareSeries: shown.Compare,
		CurrentLabel:  shown.CurrentLabel,
		CompareLabel:  shown.CompareLabel,
		CurrentTotal:  current,
		CompareTotal:  compare,
	}
}

func productDTO(p sales.ProductStat) dto.ProductStatDTO {
	return dto.ProductStatDTO{Name: p.Name, Quantity: p.Quantity, Sales: p.Sales}
}

func countDTOs(in []sales.Count) []dto.CountDTO {
	out := make([]dto.CountDTO, 0, len(in))
	for _, c := range in {
		out = append(out, dto.CountDTO{Key: c.Key, Count: c.Count})
	}
	return out
}

func orderSummaryDTO(d sales.OrderDetail, loc *time.Location) dto.OrderSummaryDTO {
	out := dto.OrderSummaryDTO{
		OrderID:     d.Order.OrderID,
		OrderStatus: d.Order.OrderStatus,
		OrderType:   d.Order.OrderType,
		CrewName:    d.CrewName,
		Total:       d.Total,
		ItemCount:   sales.SumQuantities(d.Items),
	}
	if d.Order.HasCreatedAt() {
		out.CreatedAt = d.Order.CreatedAt.In(loc).Format(time.RFC3339)
	}
	return out
}

func newer(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.After(*b)
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
