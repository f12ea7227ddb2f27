package analytics_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/report"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/repository"
)

var manila = time.FixedZone("PHT", 8*3600)

// sábado 17 de octubre de 2026, 10:00
var now = time.Date(2026, time.October, 17, 10, 0, 0, 0, manila)

var fixedTZ = analytics.TimeSettings{Location: manila, Clock: func() time.Time { return now }}

func at(d, h, min int) *time.Time {
	t := time.Date(2026, time.October, d, h, min, 0, 0, manila)
	return &t
}

// memStore repositorios en memoria para las tres colecciones.
type memStore struct {
	mu     sync.Mutex
	orders []entity.Order
	items  []entity.OrderItem
	crew   []entity.Crew
	err    error
	loads  int
}

func (m *memStore) ListOrders(context.Context) ([]entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.err != nil {
		return nil, m.err
	}
	return append([]entity.Order(nil), m.orders...), nil
}

func (m *memStore) ListOrderItems(context.Context) ([]entity.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entity.OrderItem(nil), m.items...), nil
}

func (m *memStore) ListCrew(context.Context) ([]entity.Crew, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entity.Crew(nil), m.crew...), nil
}

func (m *memStore) addOrder(o entity.Order, items ...entity.OrderItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, o)
	m.items = append(m.items, items...)
}

func (m *memStore) loader() *analytics.SnapshotLoader {
	return analytics.NewSnapshotLoader(m, m, m)
}

func latteStore() *memStore {
	return &memStore{
		orders: []entity.Order{
			{OrderID: "O1", CreatedAt: at(17, 9, 15), OrderStatus: "Completed", OrderType: "Dine-in", CrewID: "C1",
				TotalPrice: decimal.NewNullDecimal(decimal.NewFromInt(200))},
			{OrderID: "O2", CreatedAt: at(16, 11, 0), OrderStatus: "Pending", OrderType: "Take-out", CrewID: "C2"},
		},
		items: []entity.OrderItem{
			{OrderID: "O1", ItemName: "Latte", Category: "Coffee", Quantity: 2, Price: decimal.NewFromInt(100)},
			{OrderID: "O2", ItemName: "Mocha", Category: "coffee", Quantity: 1, Price: decimal.NewFromInt(150)},
		},
		crew: []entity.Crew{
			{CrewID: "C1", FirstName: "Ana", LastName: "Cruz"},
			{CrewID: "C2", FirstName: "Ben", LastName: "Reyes"},
		},
	}
}

// fakeSerializer escribe un contenido fijo o falla a mitad de escritura.
type fakeSerializer struct {
	ext  string
	fail bool
}

func (f fakeSerializer) Serialize(_ context.Context, wb *report.Workbook, w io.Writer) error {
	if _, err := io.WriteString(w, "partial:"+wb.FileName); err != nil {
		return err
	}
	if f.fail {
		return errors.New("disco lleno")
	}
	return nil
}

func (f fakeSerializer) ContentType() string { return "application/x-" + f.ext }
func (f fakeSerializer) Extension() string   { return f.ext }

// chanSubscriber entrega los eventos enviados por el test.
type chanSubscriber struct {
	events chan repository.ChangeEvent
}

func (s chanSubscriber) Subscribe(ctx context.Context, handle func(repository.ChangeEvent)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-s.events:
			handle(ev)
		}
	}
}
