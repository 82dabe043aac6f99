package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"product-catalog/internal/product/repository"
)

// txOptions maps repository options onto database/sql ones.
// Read-only transactions run at repeatable read so that every statement sees one snapshot.
func txOptions(opt repository.TxOptions) *sql.TxOptions {
	if opt.ReadOnly {
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	return &sql.TxOptions{Isolation: sql.LevelReadCommitted}
}

// WithinTx runs fn in a transaction configured by txOptions. Nested calls reuse the open transaction.
func (r *implRepository) WithinTx(ctx context.Context, opt repository.TxOptions, fn func(ctx context.Context, repo repository.ProductRepository) error) (err error) {
	if r.pool == nil {
		return fn(ctx, r)
	}

	tx, err := r.pool.BeginTx(ctx, txOptions(opt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("WithinTx"), err)
		return repository.ErrFailedToBegin
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.l.Warnf(ctx, "%s rollback: %v", r.dsn("WithinTx"), rbErr)
			}
		}
	}()

	if err = fn(ctx, &implRepository{db: tx, l: r.l}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("WithinTx"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToCommit, err)
	}
	return nil
}

// Ping checks connectivity of the underlying pool.
func (r *implRepository) Ping(ctx context.Context) error {
	if r.pool == nil {
		return nil
	}
	return r.pool.PingContext(ctx)
}
