package sales

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Count conteo por clave en orden de primera aparición.
type Count struct {
	Key   string
	Count int
}

// ProductStat producto con su cantidad y ventas acumuladas.
type ProductStat struct {
	Name     string
	Quantity int
	Sales    decimal.Decimal
}

// CategoryStat categoría normalizada (Key) con nombre para mostrar.
type CategoryStat struct {
	Key      string
	Name     string
	Quantity int
}

// KPI indicadores del conjunto filtrado. Nunca negativos.
type KPI struct {
	TotalSales        decimal.Decimal
	TotalItemsSold    int
	TotalOrders       int
	UniqueOrderCount  int
	AverageOrderValue decimal.Decimal
	BestProduct       ProductStat
	UniqueProducts    int
	BestCategory      CategoryStat
	StatusBreakdown   []Count
	TypeBreakdown     []Count
}

// Summarize calcula los KPIs sobre un snapshot ya filtrado por rango de fechas.
// Campos numéricos faltantes cuentan como cero; nunca falla.
func Summarize(s Snapshot) KPI {
	k := KPI{
		TotalSales:        decimal.Zero,
		AverageOrderValue: decimal.Zero,
		TotalOrders:       len(s.Orders),
	}

	products := newTally()
	categories := newTally()
	for _, it := range s.Items {
		line := it.LineTotal()
		k.TotalSales = k.TotalSales.Add(line)
		k.TotalItemsSold += it.Qty()
		products.add(itemName(it), it.Qty(), line)
		categories.add(orDefault(CategoryKey(it.Category), CategoryKey(Unknown)), it.Qty(), line)
	}

	ids := make(map[string]struct{}, len(s.Orders))
	statuses := newTally()
	types := newTally()
	for _, o := range s.Orders {
		if o.OrderID != "" {
			ids[o.OrderID] = struct{}{}
		}
		statuses.add(orDefault(o.OrderStatus, Unknown), 1, decimal.Zero)
		types.add(orDefault(o.OrderType, Unknown), 1, decimal.Zero)
	}
	k.UniqueOrderCount = len(ids)

	if k.TotalOrders > 0 {
		k.AverageOrderValue = k.TotalSales.Div(decimal.NewFromInt(int64(k.TotalOrders)))
	}

	k.UniqueProducts = products.len()
	k.BestProduct = ProductStat{Name: NotApplicable, Sales: decimal.Zero}
	if name, qty, amount, ok := products.best(); ok {
		k.BestProduct = ProductStat{Name: name, Quantity: qty, Sales: amount}
	}
	k.BestCategory = CategoryStat{Name: NotApplicable}
	if key, qty, _, ok := categories.best(); ok {
		k.BestCategory = CategoryStat{Key: key, Name: DisplayCategory(key), Quantity: qty}
	}

	k.StatusBreakdown = statuses.counts()
	k.TypeBreakdown = types.counts()
	return k
}

// DisplayCategory título para mostrar una categoría normalizada ("hot drinks" -> "Hot Drinks").
func DisplayCategory(key string) string {
	// cases.Caser guarda estado: uno nuevo por llamada.
	return cases.Title(language.English).String(key)
}

func (t *tally) counts() []Count {
	out := make([]Count, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, Count{Key: k, Count: t.qty[k]})
	}
	return out
}
