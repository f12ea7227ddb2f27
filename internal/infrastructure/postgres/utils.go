package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/pos-dashboard-api/internal/domain"
)

// Querier subconjunto de pgxpool.Pool / pgx.Tx que usan los repositorios.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Códigos SQLSTATE que indican que el esquema no está migrado.
const (
	undefinedTable  = "42P01"
	undefinedColumn = "42703"
)

// queryError envuelve un error de lectura con domain.ErrDataSource y la operación.
// Un esquema sin migrar se reporta explícitamente.
func queryError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == undefinedTable || pgErr.Code == undefinedColumn) {
		return fmt.Errorf("%s: esquema sin migrar (%s): %w", op, pgErr.Message, domain.ErrDataSource)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDataSource, err)
}
