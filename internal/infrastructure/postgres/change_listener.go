package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pos-dashboard-api/internal/domain"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/pos-dashboard-api/pkg/logger"
)

// ChangeChannel canal de NOTIFY que emiten los triggers de 001_sales_schema.sql.
const ChangeChannel = "sales_changes"

var _ repository.ChangeSubscriber = (*ChangeListener)(nil)

// ChangeListener escucha ChangeChannel con una conexión dedicada del pool.
type ChangeListener struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewChangeListener construye el listener; la conexión se toma recién en Subscribe.
func NewChangeListener(pool *pgxpool.Pool, log *logger.Logger) *ChangeListener {
	return &ChangeListener{pool: pool, log: log}
}

// Subscribe ejecuta LISTEN y llama a handle por cada notificación válida hasta que ctx se
// cancela. Payloads que no respetan "<colección>:<cambio>" se registran y se ignoran.
func (l *ChangeListener) Subscribe(ctx context.Context, handle func(repository.ChangeEvent)) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("changes.Subscribe acquire: %w: %w", domain.ErrDataSource, err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ChangeChannel}.Sanitize()); err != nil {
		return fmt.Errorf("changes.Subscribe listen: %w: %w", domain.ErrDataSource, err)
	}
	l.log.Info().Str("channel", ChangeChannel).Msg("escuchando cambios de ventas")

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("changes.Subscribe wait: %w: %w", domain.ErrDataSource, err)
		}
		ev, err := ParseChangePayload(n.Payload)
		if err != nil {
			l.log.Warn().Err(err).Str("payload", n.Payload).Msg("notificación ignorada")
			continue
		}
		handle(ev)
	}
}

// ParseChangePayload interpreta "<colección>:<created|patched|removed>".
func ParseChangePayload(payload string) (repository.ChangeEvent, error) {
	collection, kind, ok := strings.Cut(strings.TrimSpace(payload), ":")
	if !ok {
		return repository.ChangeEvent{}, fmt.Errorf("%w: payload %q", domain.ErrInvalidInput, payload)
	}
	switch collection {
	case repository.CollectionOrders, repository.CollectionOrderItems, repository.CollectionCrew:
	default:
		return repository.ChangeEvent{}, fmt.Errorf("%w: colección %q", domain.ErrInvalidInput, collection)
	}
	switch kind {
	case repository.ChangeCreated, repository.ChangePatched, repository.ChangeRemoved:
	default:
		return repository.ChangeEvent{}, fmt.Errorf("%w: cambio %q", domain.ErrInvalidInput, kind)
	}
	return repository.ChangeEvent{Collection: collection, Kind: kind}, nil
}
