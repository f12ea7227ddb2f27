package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// ListOrders devuelve todas las órdenes en orden de inserción.
// created_at y total_price nulos se conservan como ausentes.
func (r *OrderRepo) ListOrders(ctx context.Context) ([]entity.Order, error) {
	query := `
		SELECT order_id,
		       created_at,
		       COALESCE(order_status, ''),
		       COALESCE(order_type, ''),
		       COALESCE(crew_id, ''),
		       total_price
		FROM orders
		ORDER BY seq`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, queryError("orders.ListOrders", err)
	}
	defer rows.Close()

	var out []entity.Order
	for rows.Next() {
		var (
			o         entity.Order
			createdAt *time.Time
			total     decimal.NullDecimal
		)
		if err := rows.Scan(&o.OrderID, &createdAt, &o.OrderStatus, &o.OrderType, &o.CrewID, &total); err != nil {
			return nil, queryError("orders.ListOrders scan", err)
		}
		o.CreatedAt = createdAt
		o.TotalPrice = total
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("orders.ListOrders rows", err)
	}
	return out, nil
}
