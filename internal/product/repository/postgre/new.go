package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"product-catalog/internal/product/repository"
	"product-catalog/pkg/log"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type implRepository struct {
	db   DBTX
	pool *sql.DB // nil when bound to a transaction
	l    log.Logger
}

// New creates a new PostgreSQL-backed Repository for the product domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("product/repository/postgre: db is required")
	}
	return &implRepository{db: db, pool: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("product/repository/postgre.%s", method)
}
