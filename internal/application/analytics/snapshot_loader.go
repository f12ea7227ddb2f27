// Package analytics contiene los casos de uso del dashboard de ventas del POS:
// chart comparativo, tarjetas de KPIs, widgets, exportación del reporte y refresco en vivo.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-dashboard-api/internal/domain"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/sales"
)

// SnapshotLoader lee las tres colecciones que consume el núcleo de agregación.
type SnapshotLoader struct {
	orderRepo repository.OrderRepository
	itemRepo  repository.OrderItemRepository
	crewRepo  repository.CrewRepository
}

// NewSnapshotLoader construye el loader.
func NewSnapshotLoader(
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
	crewRepo repository.CrewRepository,
) *SnapshotLoader {
	return &SnapshotLoader{orderRepo: orderRepo, itemRepo: itemRepo, crewRepo: crewRepo}
}

// Load lee órdenes, ítems y crew en paralelo y devuelve un Snapshot nuevo.
// Cualquier error de lectura se envuelve con domain.ErrDataSource.
func (l *SnapshotLoader) Load(ctx context.Context) (sales.Snapshot, error) {
	// ── Goroutines para paralelizar las 3 lecturas ────────────────────────────
	type ordersResult struct {
		rows []entity.Order
		err  error
	}
	type itemsResult struct {
		rows []entity.OrderItem
		err  error
	}
	type crewResult struct {
		rows []entity.Crew
		err  error
	}

	ordersCh := make(chan ordersResult, 1)
	itemsCh := make(chan itemsResult, 1)
	crewCh := make(chan crewResult, 1)

	go func() {
		rows, err := l.orderRepo.ListOrders(ctx)
		ordersCh <- ordersResult{rows, err}
	}()
	go func() {
		rows, err := l.itemRepo.ListOrderItems(ctx)
		itemsCh <- itemsResult{rows, err}
	}()
	go func() {
		rows, err := l.crewRepo.ListCrew(ctx)
		crewCh <- crewResult{rows, err}
	}()

	orders := <-ordersCh
	items := <-itemsCh
	crew := <-crewCh

	if orders.err != nil {
		return sales.Snapshot{}, fmt.Errorf("snapshot: órdenes: %w: %w", domain.ErrDataSource, orders.err)
	}
	if items.err != nil {
		return sales.Snapshot{}, fmt.Errorf("snapshot: ítems: %w: %w", domain.ErrDataSource, items.err)
	}
	if crew.err != nil {
		return sales.Snapshot{}, fmt.Errorf("snapshot: crew: %w: %w", domain.ErrDataSource, crew.err)
	}

	return sales.Snapshot{Orders: orders.rows, Items: items.rows, Crew: crew.rows}, nil
}
