package entity

import "github.com/shopspring/decimal"

// OrderItem línea de una orden. Quantity y Price faltantes se tratan como cero.
type OrderItem struct {
	OrderID  string
	ItemName string
	Category string // mayúsculas variables; agrupar siempre en minúsculas
	Quantity int
	Price    decimal.Decimal // precio unitario
}

// Qty devuelve la cantidad saneada (nunca negativa).
func (i OrderItem) Qty() int {
	if i.Quantity < 0 {
		return 0
	}
	return i.Quantity
}

// UnitPrice devuelve el precio unitario saneado (nunca negativo).
func (i OrderItem) UnitPrice() decimal.Decimal {
	if i.Price.IsNegative() {
		return decimal.Zero
	}
	return i.Price
}

// LineTotal = precio × cantidad.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Qty())))
}
