package store

import (
	"context"
	"database/sql"
)

// DBTX is the query-execution collaborator every store is built on. It is
// implemented by both *sql.DB and *sql.Tx, so a store can run either on the
// pool or inside a transaction started by RunInTransaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
