package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/period"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/sales"
)

func TestAggregate_LatteHoy9AM(t *testing.T) {
	snap := sales.Snapshot{
		Orders: []entity.Order{order("1", ts(time.October, 17, 9, 15))},
		Items:  []entity.OrderItem{item("1", "Latte", "Coffee", 2, 100)},
	}

	s := sales.Aggregate(snap, period.Resolve(period.ModeDay, now))
	require.Len(t, s.Labels, 10)
	require.Len(t, s.Current, 10)
	require.Len(t, s.Compare, 10)

	for i, l := range s.Labels {
		if l == "9AM" {
			assert.True(t, s.Current[i].Equal(dec(200)), "9AM = 200, got %s", s.Current[i])
		} else {
			assert.True(t, s.Current[i].IsZero(), "%s debe ser 0", l)
		}
		assert.True(t, s.Compare[i].IsZero())
	}
	assert.Equal(t, "Today", s.CurrentLabel)
	assert.Equal(t, "Yesterday", s.CompareLabel)
}

func TestAggregate_SumaNoSuperaVentasTotales(t *testing.T) {
	snap := sales.Snapshot{
		Orders: []entity.Order{
			order("1", ts(time.October, 17, 9, 0)),  // hoy
			order("2", ts(time.October, 16, 12, 0)), // ayer
			order("3", ts(time.October, 17, 7, 0)),  // fuera de horario
			order("4", nil),                         // sin fecha
			order("5", ts(time.October, 10, 12, 0)), // fuera de ambas ventanas
		},
		Items: []entity.OrderItem{
			item("1", "Latte", "Coffee", 1, 120),
			item("2", "Pandesal", "Bread", 10, 5),
			item("3", "Mocha", "Coffee", 1, 150),
			item("4", "Mocha", "Coffee", 1, 150),
			item("5", "Mocha", "Coffee", 3, 150),
		},
	}
	for _, mode := range []period.Mode{period.ModeDay, period.ModeWeek, period.ModeMonth} {
		s := sales.Aggregate(snap, period.Resolve(mode, now))
		cur, cmp := s.Totals()
		all := sales.SumLines(snap.Items)
		assert.True(t, cur.Add(cmp).LessThanOrEqual(all), "modo %s", mode)
	}

	s := sales.Aggregate(snap, period.Resolve(period.ModeDay, now))
	cur, cmp := s.Totals()
	assert.True(t, cur.Equal(dec(120)))
	assert.True(t, cmp.Equal(dec(50)))

	// En modo mes las órdenes 1, 2, 3 y 5 caen en octubre; cada una en exactamente una ventana.
	s = sales.Aggregate(snap, period.Resolve(period.ModeMonth, now))
	cur, cmp = s.Totals()
	assert.True(t, cur.Equal(dec(120+50+150+450)))
	assert.True(t, cmp.IsZero())
}

func TestAggregate_Week(t *testing.T) {
	snap := sales.Snapshot{
		Orders: []entity.Order{
			order("1", ts(time.October, 12, 9, 0)), // lunes de esta semana
			order("2", ts(time.October, 5, 9, 0)),  // lunes de la semana pasada
			order("3", ts(time.October, 12, 20, 0)),
		},
		Items: []entity.OrderItem{
			item("1", "Latte", "Coffee", 1, 100),
			item("2", "Latte", "Coffee", 2, 100),
			item("3", "Latte", "Coffee", 1, 50),
		},
	}
	s := sales.Aggregate(snap, period.Resolve(period.ModeWeek, now))
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, s.Labels)
	assert.True(t, s.Current[1].Equal(dec(150)))
	assert.True(t, s.Compare[1].Equal(dec(200)))
}

func TestAggregate_IndependienteDelOrdenDeEntrada(t *testing.T) {
	orders := []entity.Order{
		order("1", ts(time.October, 17, 9, 0)),
		order("2", ts(time.October, 17, 9, 30)),
		order("3", ts(time.October, 16, 15, 0)),
	}
	items := []entity.OrderItem{
		item("1", "Latte", "Coffee", 1, 100),
		item("2", "Mocha", "Coffee", 2, 130),
		item("3", "Ensaymada", "Bread", 3, 45),
	}
	p := period.Resolve(period.ModeDay, now)
	a := sales.Aggregate(sales.Snapshot{Orders: orders, Items: items}, p)

	reversed := []entity.Order{orders[2], orders[1], orders[0]}
	b := sales.Aggregate(sales.Snapshot{Orders: reversed, Items: []entity.OrderItem{items[2], items[0], items[1]}}, p)

	for i := range a.Labels {
		assert.True(t, a.Current[i].Equal(b.Current[i]))
		assert.True(t, a.Compare[i].Equal(b.Compare[i]))
	}
}

func TestAggregate_OrdenSinItemsSumaCero(t *testing.T) {
	snap := sales.Snapshot{Orders: []entity.Order{order("1", ts(time.October, 17, 9, 0))}}
	s := sales.Aggregate(snap, period.Resolve(period.ModeDay, now))
	cur, _ := s.Totals()
	assert.True(t, cur.IsZero())
}

func TestSeries_Visible(t *testing.T) {
	snap := sales.Snapshot{
		Orders: []entity.Order{order("1", ts(time.October, 17, 9, 15))},
		Items:  []entity.OrderItem{item("1", "Latte", "Coffee", 2, 100)},
	}
	s := sales.Aggregate(snap, period.Resolve(period.ModeDay, now))

	onlyCurrent := s.Visible(sales.Visibility{Current: true})
	assert.Nil(t, onlyCurrent.Compare)
	assert.Len(t, onlyCurrent.Current, 10)
	// la serie original no se modifica
	assert.Len(t, s.Compare, 10)

	none := s.Visible(sales.Visibility{})
	assert.Nil(t, none.Current)
	assert.Nil(t, none.Compare)
	assert.Equal(t, s.Labels, none.Labels)
	assert.True(t, decimal.Sum(decimal.Zero, s.Current...).Equal(dec(200)))
}
