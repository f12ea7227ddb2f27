// Package sales agregación pura de ventas del POS: series del chart, KPIs y rankings.
//
// Todas las funciones trabajan sobre un Snapshot inmutable y construyen estructuras
// nuevas en cada llamada; no hay estado compartido entre invocaciones.
package sales

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/period"
)

// Valores de reemplazo para datos faltantes o referencias sin resolver.
const (
	Unknown       = "Unknown"
	NotApplicable = "N/A"
)

// Snapshot las tres colecciones tal como las entrega la fuente de datos.
type Snapshot struct {
	Orders []entity.Order
	Items  []entity.OrderItem
	Crew   []entity.Crew
}

// FilterByRange conserva las órdenes con created_at dentro de r (rango cerrado) y
// solo los ítems de esas órdenes. El crew se conserva completo.
func FilterByRange(s Snapshot, r period.DateRange) Snapshot {
	out := Snapshot{Crew: s.Crew}
	kept := make(map[string]struct{}, len(s.Orders))
	for _, o := range s.Orders {
		if !o.HasCreatedAt() || !r.Contains(*o.CreatedAt) {
			continue
		}
		out.Orders = append(out.Orders, o)
		if o.OrderID != "" {
			kept[o.OrderID] = struct{}{}
		}
	}
	for _, it := range s.Items {
		if _, ok := kept[it.OrderID]; ok {
			out.Items = append(out.Items, it)
		}
	}
	return out
}

// Index join orders ⇄ items ⇄ crew construido por llamada.
type Index struct {
	itemsByOrder map[string][]entity.OrderItem
	crewByID     map[string]entity.Crew
}

// NewIndex indexa los ítems por order_id (conservando el orden de entrada) y el crew por id.
func NewIndex(s Snapshot) *Index {
	ix := &Index{
		itemsByOrder: make(map[string][]entity.OrderItem, len(s.Orders)),
		crewByID:     make(map[string]entity.Crew, len(s.Crew)),
	}
	for _, it := range s.Items {
		if it.OrderID == "" {
			continue
		}
		ix.itemsByOrder[it.OrderID] = append(ix.itemsByOrder[it.OrderID], it)
	}
	for _, c := range s.Crew {
		if _, dup := ix.crewByID[c.CrewID]; !dup {
			ix.crewByID[c.CrewID] = c
		}
	}
	return ix
}

// ItemsOf ítems de la orden; nil si no tiene.
func (ix *Index) ItemsOf(orderID string) []entity.OrderItem {
	if orderID == "" {
		return nil
	}
	return ix.itemsByOrder[orderID]
}

// OrderSales suma de price × quantity de los ítems de la orden.
func (ix *Index) OrderSales(orderID string) decimal.Decimal {
	return SumLines(ix.ItemsOf(orderID))
}

// CrewName "<first> <last>"; si el crew no existe devuelve el id crudo, y "N/A" sin id.
func (ix *Index) CrewName(crewID string) string {
	if c, ok := ix.crewByID[crewID]; ok && crewID != "" {
		return c.FullName()
	}
	if crewID != "" {
		return crewID
	}
	return NotApplicable
}

// SumLines suma de líneas.
func SumLines(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// SumQuantities suma de cantidades.
func SumQuantities(items []entity.OrderItem) int {
	n := 0
	for _, it := range items {
		n += it.Qty()
	}
	return n
}

// CategoryKey clave de agrupación de categoría (minúsculas, sin espacios extremos).
func CategoryKey(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func itemName(it entity.OrderItem) string {
	if strings.TrimSpace(it.ItemName) == "" {
		return Unknown
	}
	return it.ItemName
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
