package memory

import (
	"context"
	"errors"
	"maps"

	"product-catalog/internal/product/repository"
)

var errReadOnlyTx = errors.New("cannot execute write in a read-only transaction")

// WithinTx serialises writers behind the store lock and restores the previous
// state when fn fails, so a failed unit of work leaves nothing behind.
func (r *implRepository) WithinTx(ctx context.Context, opt repository.TxOptions, fn func(ctx context.Context, repo repository.ProductRepository) error) error {
	if r.inTx {
		return fn(ctx, r)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if opt.ReadOnly {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
		return fn(ctx, &implRepository{s: r.s, inTx: true, readOnly: true})
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snapshot := maps.Clone(r.s.products)
	nextID := r.s.nextID
	if err := fn(ctx, &implRepository{s: r.s, inTx: true}); err != nil {
		r.s.products = snapshot
		r.s.nextID = nextID
		return err
	}
	return nil
}

// Ping only fails once ctx is done.
func (r *implRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *implRepository) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

func (r *implRepository) lock() (func(), error) {
	if r.readOnly {
		return nil, errReadOnlyTx
	}
	if r.inTx {
		return func() {}, nil
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock, nil
}
