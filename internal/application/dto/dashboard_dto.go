package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// ChartRequest parámetros de GET /api/dashboard/chart.
type ChartRequest struct {
	Mode    string `query:"mode"`    // day|week|month (default day)
	Current *bool  `query:"current"` // mostrar serie actual (default true)
	Compare *bool  `query:"compare"` // mostrar serie de comparación (default true)
}

// BestSellersRequest parámetros de GET /api/dashboard/best-sellers.
type BestSellersRequest struct {
	Category string `query:"category"`
	Limit    int    `query:"limit"` // default 6
}

// CrewRankingRequest parámetros de GET /api/dashboard/crew-ranking.
type CrewRankingRequest struct {
	Status string `query:"status"` // default Completed
}

// ── Chart ─────────────────────────────────────────────────────────────────────

// SalesChartDTO series alineadas a Labels. Una serie oculta se omite.
type SalesChartDTO struct {
	Mode          string            `json:"mode"`
	Labels        []string          `json:"labels"`
	CurrentSeries []decimal.Decimal `json:"current_series,omitempty"`
	CompareSeries []decimal.Decimal `json:"compare_series,omitempty"`
	CurrentLabel  string            `json:"current_label"`
	CompareLabel  string            `json:"compare_label"`
	CurrentTotal  decimal.Decimal   `json:"current_total"`
	CompareTotal  decimal.Decimal   `json:"compare_total"`
	Generation    uint64            `json:"generation,omitempty"` // solo cuando viene del refresco en vivo
}

// ── Tarjetas ──────────────────────────────────────────────────────────────────

// SalesStatsDTO tarjetas de KPIs del período actual del modo.
type SalesStatsDTO struct {
	Mode              string          `json:"mode"`
	DateRange         string          `json:"date_range"` // ej: "10/11/2026 to 10/17/2026"
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalItemsSold    int             `json:"total_items_sold"`
	TotalOrders       int             `json:"total_orders"`
	UniqueOrders      int             `json:"unique_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	BestProduct       ProductStatDTO  `json:"best_product"`
	UniqueProducts    int             `json:"unique_products"`
	BestCategory      string          `json:"best_category"`
	BestCategoryQty   int             `json:"best_category_quantity"`
	StatusBreakdown   []CountDTO      `json:"status_breakdown"`
	TypeBreakdown     []CountDTO      `json:"type_breakdown"`
}

// CountDTO conteo por clave.
type CountDTO struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// ProductStatDTO producto con cantidad vendida y ventas.
type ProductStatDTO struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Sales    decimal.Decimal `json:"sales"`
}

// ── Widgets ───────────────────────────────────────────────────────────────────

// BestSellersDTO top de productos de una categoría.
type BestSellersDTO struct {
	Category string           `json:"category"`
	Products []ProductStatDTO `json:"products"`
}

// CategoryShareDTO participación de una categoría en las unidades vendidas.
type CategoryShareDTO struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Percent  int    `json:"percent"`
}

// CrewRankingDTO fila del leaderboard de crew.
type CrewRankingDTO struct {
	CrewID string `json:"crew_id"`
	Name   string `json:"name"`
	Orders int    `json:"orders"`
}

// ── Órdenes ───────────────────────────────────────────────────────────────────

// OrderSummaryDTO fila del listado de órdenes.
type OrderSummaryDTO struct {
	OrderID     string          `json:"order_id"`
	CreatedAt   string          `json:"created_at,omitempty"` // RFC3339 en la zona del reporte
	OrderStatus string          `json:"order_status"`
	OrderType   string          `json:"order_type"`
	CrewName    string          `json:"crew_name"`
	Total       decimal.Decimal `json:"total"`
	ItemCount   int             `json:"item_count"`
}

// OrderItemDTO línea de una orden.
type OrderItemDTO struct {
	ItemName string          `json:"item_name"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// OrderDetailDTO orden con sus líneas.
type OrderDetailDTO struct {
	OrderSummaryDTO
	Items []OrderItemDTO `json:"items"`
}

// OrderListDTO página de órdenes, más recientes primero.
type OrderListDTO struct {
	Orders []OrderSummaryDTO `json:"orders"`
	Page   PageResponse      `json:"page"`
}
