package usecase_test

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"product-catalog/internal/product"
	"product-catalog/internal/product/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errStoreDown = errors.New("connection refused")

// brokenRepo fails every storage call.
type brokenRepo struct{}

func (brokenRepo) WithinTx(ctx context.Context, opt repository.TxOptions, fn func(ctx context.Context, repo repository.ProductRepository) error) error {
	return fn(ctx, brokenRepo{})
}
func (brokenRepo) Ping(ctx context.Context) error { return errStoreDown }
func (brokenRepo) CreateProduct(ctx context.Context, opt repository.CreateProductOptions) (product.Product, error) {
	return product.Product{}, errStoreDown
}
func (brokenRepo) GetOneProduct(ctx context.Context, opt repository.GetOneProductOptions) (product.Product, error) {
	return product.Product{}, errStoreDown
}
func (brokenRepo) ListProducts(ctx context.Context, opt repository.ListProductsOptions) ([]product.Product, error) {
	return nil, errStoreDown
}
func (brokenRepo) SearchProducts(ctx context.Context, opt repository.SearchProductsOptions) ([]product.Product, error) {
	return nil, errStoreDown
}
func (brokenRepo) PageProducts(ctx context.Context, opt repository.PageProductsOptions) ([]product.Product, int64, error) {
	return nil, 0, errStoreDown
}
func (brokenRepo) UpdateProduct(ctx context.Context, opt repository.UpdateProductOptions) (product.Product, error) {
	return product.Product{}, errStoreDown
}
func (brokenRepo) DeleteProduct(ctx context.Context, id int64) error { return errStoreDown }

// txSpy records the options of every transaction it opens.
type txSpy struct {
	repository.Repository
	opts []repository.TxOptions
}

func (s *txSpy) WithinTx(ctx context.Context, opt repository.TxOptions, fn func(ctx context.Context, repo repository.ProductRepository) error) error {
	s.opts = append(s.opts, opt)
	return s.Repository.WithinTx(ctx, opt, fn)
}

func input(name, desc, price string, qty int, category string, active *bool) product.ProductInput {
	p := decimal.RequireFromString(price)
	return product.ProductInput{
		Name:        name,
		Description: desc,
		Price:       &p,
		Quantity:    &qty,
		Category:    category,
		IsActive:    active,
	}
}

func boolPtr(b bool) *bool { return &b }
