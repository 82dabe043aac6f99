// Package memory is a process-local product store. It honours the same
// transactional contract as the postgres store and backs tests and local runs.
package memory

import (
	"sync"
	"time"

	"product-catalog/internal/product"
	"product-catalog/internal/product/repository"
)

type store struct {
	mu       sync.RWMutex
	products map[int64]product.Product
	nextID   int64
	now      func() time.Time
}

type implRepository struct {
	s *store
	// inTx is set on the repository handed to WithinTx callbacks; the lock is already held.
	inTx     bool
	readOnly bool
}

// compile-time assertion that implRepository implements repository.Repository
var _ repository.Repository = (*implRepository)(nil)

// New creates an empty in-memory Repository.
func New() repository.Repository {
	return NewWithClock(func() time.Time { return time.Now().UTC() })
}

// NewWithClock is New with a custom time source for timestamps.
func NewWithClock(now func() time.Time) repository.Repository {
	return &implRepository{
		s: &store{
			products: make(map[int64]product.Product),
			now:      now,
		},
	}
}
