package sales

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
)

// DefaultBestSellersLimit productos del widget "Top Best Sellers".
const DefaultBestSellersLimit = 6

// BestSellers top limit productos de una categoría (sin distinguir mayúsculas) por cantidad.
// En empate se conserva el orden de primera aparición.
func BestSellers(items []entity.OrderItem, category string, limit int) []ProductStat {
	key := CategoryKey(category)
	t := newTally()
	for _, it := range items {
		if CategoryKey(it.Category) != key {
			continue
		}
		t.add(itemName(it), it.Qty(), it.LineTotal())
	}

	out := make([]ProductStat, 0, t.len())
	for _, name := range t.keys {
		out = append(out, ProductStat{Name: name, Quantity: t.qty[name], Sales: t.sales[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CategoryShare participación de una categoría sobre la cantidad total vendida.
type CategoryShare struct {
	Key      string
	Name     string
	Quantity int
	Percent  int // redondeado; 0 si no hay ventas
}

// CategoryShares agrupa todas las cantidades por categoría normalizada.
func CategoryShares(items []entity.OrderItem) []CategoryShare {
	t := newTally()
	total := 0
	for _, it := range items {
		t.add(CategoryKey(it.Category), it.Qty(), decimal.Zero)
		total += it.Qty()
	}

	out := make([]CategoryShare, 0, t.len())
	for _, k := range t.keys {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(t.qty[k]) / float64(total) * 100))
		}
		out = append(out, CategoryShare{Key: k, Name: DisplayCategory(k), Quantity: t.qty[k], Percent: pct})
	}
	return out
}

// CrewSales crew con la cantidad de órdenes en el estado pedido.
type CrewSales struct {
	CrewID string
	Name   string
	Orders int
}

// CrewRanking cuenta las órdenes con estado status (sin distinguir mayúsculas) por crew y
// ordena de mayor a menor, estable respecto del orden de entrada del crew.
func CrewRanking(crew []entity.Crew, orders []entity.Order, status string) []CrewSales {
	counts := make(map[string]int, len(crew))
	for _, o := range orders {
		if strings.EqualFold(o.OrderStatus, status) && o.CrewID != "" {
			counts[o.CrewID]++
		}
	}
	out := make([]CrewSales, 0, len(crew))
	for _, c := range crew {
		out = append(out, CrewSales{CrewID: c.CrewID, Name: c.FullName(), Orders: counts[c.CrewID]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Orders > out[j].Orders })
	return out
}

// OrderDetail orden con su crew resuelto, ítems y total calculado.
type OrderDetail struct {
	Order    entity.Order
	CrewName string
	Items    []entity.OrderItem
	Total    decimal.Decimal
}

// OrderDetails arma el detalle de las órdenes en el orden recibido.
func OrderDetails(s Snapshot) []OrderDetail {
	ix := NewIndex(s)
	out := make([]OrderDetail, 0, len(s.Orders))
	for _, o := range s.Orders {
		items := ix.ItemsOf(o.OrderID)
		out = append(out, OrderDetail{
			Order:    o,
			CrewName: ix.CrewName(o.CrewID),
			Items:    items,
			Total:    SumLines(items),
		})
	}
	return out
}

// FindOrder detalle de una orden por id.
func FindOrder(s Snapshot, orderID string) (OrderDetail, bool) {
	for _, o := range s.Orders {
		if o.OrderID != "" && o.OrderID == orderID {
			ix := NewIndex(s)
			items := ix.ItemsOf(o.OrderID)
			return OrderDetail{Order: o, CrewName: ix.CrewName(o.CrewID), Items: items, Total: SumLines(items)}, true
		}
	}
	return OrderDetail{}, false
}

// TopItem producto con mayor cantidad dentro de los ítems dados; empate => primero visto.
func TopItem(items []entity.OrderItem) (name string, qty int, ok bool) {
	t := newTally()
	for _, it := range items {
		t.add(itemName(it), it.Qty(), it.LineTotal())
	}
	name, qty, _, ok = t.best()
	return name, qty, ok
}
