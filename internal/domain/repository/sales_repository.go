package repository

import (
	"context"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
)

// OrderRepository lectura de la colección de órdenes del POS.
type OrderRepository interface {
	// ListOrders devuelve todas las órdenes. Campos nulos llegan como cero / nil.
	ListOrders(ctx context.Context) ([]entity.Order, error)
}

// OrderItemRepository lectura de las líneas de orden.
type OrderItemRepository interface {
	// ListOrderItems devuelve todas las líneas; quantity y price nulos llegan en 0.
	ListOrderItems(ctx context.Context) ([]entity.OrderItem, error)
}

// CrewRepository lectura del personal que atiende las órdenes.
type CrewRepository interface {
	ListCrew(ctx context.Context) ([]entity.Crew, error)
}

// ── Notificaciones de cambio ──────────────────────────────────────────────────

// Colecciones observadas.
const (
	CollectionOrders     = "orders"
	CollectionOrderItems = "order_items"
	CollectionCrew       = "crew"
)

// Tipos de cambio.
const (
	ChangeCreated = "created"
	ChangePatched = "patched"
	ChangeRemoved = "removed"
)

// ChangeEvent aviso de que una colección cambió. No trae la fila modificada:
// el consumidor vuelve a leer las colecciones completas.
type ChangeEvent struct {
	Collection string
	Kind       string
}

// ChangeSubscriber entrega eventos de cambio hasta que ctx se cancela.
type ChangeSubscriber interface {
	// Subscribe bloquea; devuelve nil cuando ctx se cancela o el error de la conexión.
	Subscribe(ctx context.Context, handle func(ChangeEvent)) error
}
