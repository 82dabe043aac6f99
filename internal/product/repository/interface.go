package repository

import (
	"context"

	"product-catalog/internal/product"
)

// Repository is the composed interface for the product data store.
type Repository interface {
	ProductRepository

	// WithinTx runs fn inside one transaction. fn must only use the repository it is given.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, opt TxOptions, fn func(ctx context.Context, repo ProductRepository) error) error

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// ProductRepository defines all data access methods for the Product entity.
type ProductRepository interface {
	CreateProduct(ctx context.Context, opt CreateProductOptions) (product.Product, error)
	// GetOneProduct returns the zero Product (ID == 0) when nothing matches.
	GetOneProduct(ctx context.Context, opt GetOneProductOptions) (product.Product, error)
	ListProducts(ctx context.Context, opt ListProductsOptions) ([]product.Product, error)
	SearchProducts(ctx context.Context, opt SearchProductsOptions) ([]product.Product, error)
	PageProducts(ctx context.Context, opt PageProductsOptions) ([]product.Product, int64, error)
	// UpdateProduct returns the zero Product when the row no longer exists.
	UpdateProduct(ctx context.Context, opt UpdateProductOptions) (product.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
