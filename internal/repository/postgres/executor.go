package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor is satisfied by both *sql.DB and *sql.Tx so repositories can
// run inside or outside a transaction.
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
