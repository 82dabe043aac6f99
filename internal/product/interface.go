package product

import (
	"context"

	"product-catalog/pkg/paginator"
)

// UseCase is the product management service.
type UseCase interface {
	// Product CRUD
	Create(ctx context.Context, input ProductInput) (ProductOutput, error)
	Detail(ctx context.Context, id int64) (ProductOutput, error)
	Update(ctx context.Context, id int64, input ProductInput) (ProductOutput, error)
	Delete(ctx context.Context, id int64) error

	// Queries
	List(ctx context.Context) ([]ProductOutput, error)
	ListByCategory(ctx context.Context, input ListByCategoryInput) ([]ProductOutput, error)
	ListActive(ctx context.Context) ([]ProductOutput, error)
	Search(ctx context.Context, input SearchInput) ([]ProductOutput, error)
	ListPaged(ctx context.Context, input ListPagedInput) (paginator.Page[ProductOutput], error)
}
