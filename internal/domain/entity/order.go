package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusCompleted estado que cuenta para el leaderboard de crew. OrderStatus es texto libre.
const OrderStatusCompleted = "Completed"

// Order representa la cabecera de una venta del POS.
// CreatedAt nil excluye la orden de todo cálculo por fecha.
type Order struct {
	OrderID     string     // vacío = sin id definido
	CreatedAt   *time.Time // opcional
	OrderStatus string
	OrderType   string              // dine-in, take-out, etc. (texto libre)
	CrewID      string              // opcional, FK a Crew
	TotalPrice  decimal.NullDecimal // solo para mostrar; las ventas se calculan desde los ítems
}

// HasCreatedAt indica si la orden participa en los cálculos por fecha.
func (o Order) HasCreatedAt() bool {
	return o.CreatedAt != nil && !o.CreatedAt.IsZero()
}
