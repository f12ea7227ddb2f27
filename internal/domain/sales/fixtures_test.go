package sales_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
)

var manila = time.FixedZone("PHT", 8*3600)

// sábado 17 de octubre de 2026, 10:00 hora local
var now = time.Date(2026, time.October, 17, 10, 0, 0, 0, manila)

func ts(m time.Month, d, h, min int) *time.Time {
	t := time.Date(2026, m, d, h, min, 0, 0, manila)
	return &t
}

func order(id string, created *time.Time) entity.Order {
	return entity.Order{OrderID: id, CreatedAt: created, OrderStatus: "Completed", OrderType: "Dine-in", CrewID: "A"}
}

func item(orderID, name, category string, qty int, price int64) entity.OrderItem {
	return entity.OrderItem{
		OrderID:  orderID,
		ItemName: name,
		Category: category,
		Quantity: qty,
		Price:    decimal.NewFromInt(price),
	}
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
