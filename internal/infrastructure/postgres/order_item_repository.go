package postgres

import (
	"context"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/repository"
)

var _ repository.OrderItemRepository = (*OrderItemRepo)(nil)

// OrderItemRepo implementación de OrderItemRepository sobre PostgreSQL.
type OrderItemRepo struct {
	q Querier
}

// NewOrderItemRepository construye el adaptador de líneas de orden.
func NewOrderItemRepository(q Querier) *OrderItemRepo {
	return &OrderItemRepo{q: q}
}

// ListOrderItems devuelve todas las líneas; quantity y price nulos llegan como 0.
func (r *OrderItemRepo) ListOrderItems(ctx context.Context) ([]entity.OrderItem, error) {
	query := `
		SELECT COALESCE(order_id, ''),
		       COALESCE(item_name, ''),
		       COALESCE(category, ''),
		       COALESCE(quantity, 0),
		       COALESCE(price, 0)
		FROM order_items
		ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, queryError("order_items.ListOrderItems", err)
	}
	defer rows.Close()

	var out []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.OrderID, &it.ItemName, &it.Category, &it.Quantity, &it.Price); err != nil {
			return nil, queryError("order_items.ListOrderItems scan", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("order_items.ListOrderItems rows", err)
	}
	return out, nil
}
