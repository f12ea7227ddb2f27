package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/period"
)

// Series ventas por bucket del período actual y del de comparación, alineadas a Labels.
type Series struct {
	Labels       []string
	Current      []decimal.Decimal
	Compare      []decimal.Decimal
	CurrentLabel string
	CompareLabel string
}

// Visibility qué series incluir en la salida del chart. No afecta el cálculo.
type Visibility struct {
	Current bool
	Compare bool
}

// AllVisible ambas series visibles.
var AllVisible = Visibility{Current: true, Compare: true}

// Aggregate suma las ventas de cada orden en el bucket que le asigna p.
// Las órdenes sin created_at o fuera de ambas ventanas se omiten.
func Aggregate(s Snapshot, p period.Period) Series {
	out := Series{
		Labels:       append([]string(nil), p.Labels...),
		Current:      zeros(len(p.Labels)),
		Compare:      zeros(len(p.Labels)),
		CurrentLabel: p.CurrentLabel,
		CompareLabel: p.CompareLabel,
	}
	slot := make(map[string]int, len(p.Labels))
	for i, l := range p.Labels {
		slot[l] = i
	}

	ix := NewIndex(s)
	for _, o := range s.Orders {
		c := p.Classify(o)
		idx, ok := slot[c.Label]
		if c.Bucket == period.BucketNone || !ok {
			continue
		}
		total := ix.OrderSales(o.OrderID)
		switch c.Bucket {
		case period.BucketCurrent:
			out.Current[idx] = out.Current[idx].Add(total)
		case period.BucketCompare:
			out.Compare[idx] = out.Compare[idx].Add(total)
		}
	}
	return out
}

// Visible copia de la serie sin las series ocultas (quedan nil).
func (s Series) Visible(v Visibility) Series {
	out := s
	if !v.Current {
		out.Current = nil
	}
	if !v.Compare {
		out.Compare = nil
	}
	return out
}

// Totals suma de cada serie.
func (s Series) Totals() (current, compare decimal.Decimal) {
	return sum(s.Current), sum(s.Compare)
}

func zeros(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.Zero
	}
	return out
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
