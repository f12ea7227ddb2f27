// Package report arma el reporte de ventas exportable: cuatro hojas de celdas de texto
// con su clasificación de estilo por fila y anchos de columna.
//
// El paquete no depende de ninguna librería de hojas de cálculo; el serializador
// (xlsx, pdf) recibe el Workbook ya construido.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/period"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/sales"
)

// Nombres de hoja, en el orden en que se emiten.
const (
	SheetSummary  = "Summary"
	SheetDetailed = "Detailed Sales"
	SheetTimeslot = "Timeslot Sales"
	SheetProfit   = "Profit Analysis"
)

// Title título del documento.
const Title = "Sales Report"

// Textos de filas de relleno.
const (
	noItems        = "NO ITEMS"
	noSales        = "No Sales"
	noteNoItems    = "No items"
	noteHighValue  = "High value order"
	defaultHighVal = 1000
)

// Options presentación configurable del reporte.
type Options struct {
	CurrencySymbol     string
	HighValueThreshold decimal.Decimal // ventas > umbral => "High value order"
}

// DefaultOptions ₱ y umbral de 1000.
func DefaultOptions() Options {
	return Options{CurrencySymbol: DefaultCurrencySymbol, HighValueThreshold: decimal.NewFromInt(defaultHighVal)}
}

// Input datos de entrada del builder. Snapshot debe venir filtrado por Period.Range().
type Input struct {
	ID          string // identificador del reporte; lo asigna quien invoca
	Snapshot    sales.Snapshot
	Period      period.Period
	KPI         sales.KPI
	GeneratedAt time.Time
	Options     Options
}

// Workbook resultado entregado al serializador.
type Workbook struct {
	ID             string
	Title          string
	FileName       string // sin extensión
	GeneratedAt    time.Time
	DateRangeLabel string
	Sheets         []Sheet
}

// Sheet busca una hoja por nombre.
func (w *Workbook) Sheet(name string) (Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}

// Build construye las cuatro hojas. Es puro: mismas entradas, mismo resultado.
func Build(in Input) *Workbook {
	if in.Options.CurrencySymbol == "" {
		in.Options.CurrencySymbol = DefaultCurrencySymbol
	}
	b := &builder{
		in:  in,
		ix:  sales.NewIndex(in.Snapshot),
		loc: in.Period.Now.Location(),
	}
	dateRange := in.Period.Range().Label

	return &Workbook{
		ID:             in.ID,
		Title:          Title,
		FileName:       FileName(in.GeneratedAt),
		GeneratedAt:    in.GeneratedAt,
		DateRangeLabel: dateRange,
		Sheets: []Sheet{
			b.summary(dateRange),
			b.detailed(),
			b.timeslots(),
			b.profit(),
		},
	}
}

type builder struct {
	in  Input
	ix  *sales.Index
	loc *time.Location
}

func (b *builder) money(v decimal.Decimal) string {
	return FormatCurrency(b.in.Options.CurrencySymbol, v)
}

// ── Summary ───────────────────────────────────────────────────────────────────

func (b *builder) summary(dateRange string) Sheet {
	k := b.in.KPI
	blank := []string{"", "", ""}
	section := func(title string) []string { return []string{title, "", ""} }

	rows := [][]string{
		section("SALES OVERVIEW"),
		{"Total Sales", "All sales in the period", b.money(k.TotalSales)},
		{"Average Order Value", "Average sales per order", b.money(k.AverageOrderValue)},
		blank,
		section("PRODUCT OVERVIEW"),
		{"Most Sold Product", "Product with highest quantity",
			fmt.Sprintf("%s (%d, %s)", k.BestProduct.Name, k.BestProduct.Quantity, b.money(k.BestProduct.Sales))},
		{"Unique Products Sold", "Number of different products", strconv.Itoa(k.UniqueProducts)},
		{"Most Popular Category", "Category with most items sold",
			fmt.Sprintf("%s (%d)", k.BestCategory.Name, k.BestCategory.Quantity)},
		blank,
		section("ORDER OVERVIEW"),
		{"Total Orders", "Number of orders", strconv.Itoa(k.TotalOrders)},
		{"Unique Orders", "Orders with a distinct order ID", strconv.Itoa(k.UniqueOrderCount)},
		{"Total Items Sold", "All items sold in the period", strconv.Itoa(k.TotalItemsSold)},
		blank,
		section("ORDER BREAKDOWN"),
	}
	for _, s := range k.StatusBreakdown {
		rows = append(rows, []string{
			"Orders: " + capitalize(s.Key),
			"Orders marked as " + strings.ToLower(s.Key),
			strconv.Itoa(s.Count),
		})
	}
	for _, t := range k.TypeBreakdown {
		rows = append(rows, []string{
			"Orders: " + capitalize(t.Key),
			"Orders for " + strings.ToLower(t.Key),
			strconv.Itoa(t.Count),
		})
	}
	rows = append(rows, blank, []string{"REPORT DATE RANGE", "Period covered by this report", dateRange})

	return newSheet(SheetSummary,
		[]string{"Metric", "Description", "Value"},
		[]string{"Name of the metric", "What the metric measures", "Value for the period"},
		rows,
	)
}

// ── Detailed Sales ────────────────────────────────────────────────────────────

func (b *builder) detailed() Sheet {
	var rows [][]string
	for _, o := range b.in.Snapshot.Orders {
		date := FormatDateTime(o.CreatedAt, b.loc)
		crew := b.ix.CrewName(o.CrewID)
		orderTotal := ""
		if o.TotalPrice.Valid {
			orderTotal = b.money(o.TotalPrice.Decimal)
		}

		items := b.ix.ItemsOf(o.OrderID)
		if len(items) == 0 {
			rows = append(rows, []string{
				o.OrderID, date, o.OrderStatus, o.OrderType, crew,
				noItems, "", "", "", "", orderTotal,
			})
			continue
		}
		for _, it := range items {
			rows = append(rows, []string{
				o.OrderID, date, o.OrderStatus, o.OrderType, crew,
				it.ItemName,
				it.Category,
				strconv.Itoa(it.Qty()),
				b.money(it.UnitPrice()),
				b.money(it.LineTotal()),
				orderTotal,
			})
		}
	}

	return newSheet(SheetDetailed,
		[]string{"Order ID", "Order Date/Time", "Status", "Type", "Crew Name", "Item", "Category", "Quantity", "Price", "Subtotal", "Order Total"},
		[]string{"Unique order number", "Date and time of order", "Order status", "Order type", "Crew member who handled order", "Product name", "Product category", "Qty sold", "Unit price", "Total for this item", "Total for the order"},
		rows,
	)
}

// ── Timeslot Sales ────────────────────────────────────────────────────────────

type slotProducts struct {
	names []string
	qty   map[string]int
	total map[string]decimal.Decimal
}

func (b *builder) timeslots() Sheet {
	p := b.in.Period
	slots := make(map[string]*slotProducts, len(p.Labels))
	for _, l := range p.Labels {
		slots[l] = &slotProducts{qty: map[string]int{}, total: map[string]decimal.Decimal{}}
	}

	for _, o := range b.in.Snapshot.Orders {
		if !o.HasCreatedAt() {
			continue
		}
		label, ok := p.SlotLabel(*o.CreatedAt)
		if !ok {
			continue
		}
		slot, ok := slots[label]
		if !ok {
			continue
		}
		for _, it := range b.ix.ItemsOf(o.OrderID) {
			name := it.ItemName
			if strings.TrimSpace(name) == "" {
				name = sales.Unknown
			}
			if _, seen := slot.qty[name]; !seen {
				slot.names = append(slot.names, name)
				slot.total[name] = decimal.Zero
			}
			slot.qty[name] += it.Qty()
			slot.total[name] = slot.total[name].Add(it.LineTotal())
		}
	}

	var rows [][]string
	for _, l := range p.Labels {
		slot := slots[l]
		if len(slot.names) == 0 {
			rows = append(rows, []string{l, noSales, "0", b.money(decimal.Zero)})
			continue
		}
		for _, name := range slot.names {
			rows = append(rows, []string{l, name, strconv.Itoa(slot.qty[name]), b.money(slot.total[name])})
		}
	}

	return newSheet(SheetTimeslot,
		[]string{"Hour/Day", "Product", "Quantity Sold", "Total Sales"},
		[]string{"Time slot (hour or day)", "Product name", "Qty sold in this slot", "Total sales for this product in this slot"},
		rows,
	)
}

// ── Profit Analysis ───────────────────────────────────────────────────────────

func (b *builder) profit() Sheet {
	rows := make([][]string, 0, len(b.in.Snapshot.Orders))
	for _, o := range b.in.Snapshot.Orders {
		items := b.ix.ItemsOf(o.OrderID)
		orderSales := sales.SumLines(items)
		cost := decimal.Zero // no hay fuente de costos todavía
		profit := orderSales.Sub(cost)

		top := sales.NotApplicable
		if name, qty, ok := sales.TopItem(items); ok {
			top = fmt.Sprintf("%s (%d)", name, qty)
		}

		note := ""
		switch {
		case len(items) == 0:
			note = noteNoItems
		case orderSales.GreaterThan(b.in.Options.HighValueThreshold):
			note = noteHighValue
		}

		rows = append(rows, []string{
			o.OrderID,
			FormatDateTime(o.CreatedAt, b.loc),
			o.OrderStatus,
			o.OrderType,
			b.ix.CrewName(o.CrewID),
			b.money(orderSales),
			b.money(cost),
			b.money(profit),
			strconv.Itoa(sales.SumQuantities(items)),
			top,
			note,
		})
	}

	return newSheet(SheetProfit,
		[]string{"Order ID", "Order Date/Time", "Status", "Type", "Crew Name", "Total Sales", "Cost", "Profit", "# Items", "Top Item (Qty)", "Notes"},
		[]string{"Unique order number", "Date and time of order", "Order status", "Order type", "Crew member who handled order", "Total sales for this order", "Total cost (if available)", "Profit = Sales - Cost", "Total items in order", "Most sold item in this order", "Special notes (e.g., high value order)"},
		rows,
	)
}
