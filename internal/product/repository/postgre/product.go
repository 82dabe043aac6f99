package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"product-catalog/internal/product"
	repo "product-catalog/internal/product/repository"
)

const productColumns = `id, name, description, price, quantity, category, is_active, created_at, updated_at`

// Timestamps are always taken from the database clock.
const (
	insertProductQuery = `
		INSERT INTO products (name, description, price, quantity, category, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + productColumns

	updateProductQuery = `
		UPDATE products
		SET name = $1, description = $2, price = $3, quantity = $4, category = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING ` + productColumns
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.Category, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// CreateProduct inserts a new Product row and returns the created entity.
func (r *implRepository) CreateProduct(ctx context.Context, opt repo.CreateProductOptions) (product.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, insertProductQuery,
		opt.Name, opt.Description, opt.Price, opt.Quantity, opt.Category, opt.IsActive,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProduct"), err)
		return product.Product{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOneProduct retrieves a single Product by ID.
// Returns the zero Product (ID == 0) when not found, never an error.
func (r *implRepository) GetOneProduct(ctx context.Context, opt repo.GetOneProductOptions) (product.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if opt.ForUpdate {
		query += ` FOR UPDATE`
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return product.Product{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProduct"), err)
		return product.Product{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListProducts returns every Product matching the filter, by id ascending.
func (r *implRepository) ListProducts(ctx context.Context, opt repo.ListProductsOptions) ([]product.Product, error) {
	where, args := r.buildFilter(opt.Filter, 1)
	query := fmt.Sprintf(`SELECT %s FROM products WHERE %s ORDER BY id ASC`, productColumns, where)

	products, err := r.queryProducts(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProducts"), err)
		return nil, repo.ErrFailedToList
	}
	return products, nil
}

// SearchProducts returns Products whose name or description contains the keyword, ignoring case.
func (r *implRepository) SearchProducts(ctx context.Context, opt repo.SearchProductsOptions) ([]product.Product, error) {
	where, args := r.buildSearch(opt)
	query := fmt.Sprintf(`SELECT %s FROM products WHERE %s ORDER BY id ASC`, productColumns, where)

	products, err := r.queryProducts(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchProducts"), err)
		return nil, repo.ErrFailedToList
	}
	return products, nil
}

// PageProducts returns one window of Products and the total count of the filtered set.
func (r *implRepository) PageProducts(ctx context.Context, opt repo.PageProductsOptions) ([]product.Product, int64, error) {
	// 1. Count total (without pagination)
	where, countArgs := r.buildFilter(opt.Filter, 1)
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM products WHERE %s`, where)
	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("PageProducts"), err)
		return nil, 0, repo.ErrFailedToCount
	}

	// 2. Fetch page
	mods, args := r.buildPageQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM products %s`, productColumns, mods)
	products, err := r.queryProducts(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("PageProducts"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return products, total, nil
}

// UpdateProduct overwrites the mutable fields of a Product and returns the updated entity.
func (r *implRepository) UpdateProduct(ctx context.Context, opt repo.UpdateProductOptions) (product.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, updateProductQuery,
		opt.Name, opt.Description, opt.Price, opt.Quantity, opt.Category, opt.IsActive, opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return product.Product{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProduct"), err)
		return product.Product{}, repo.ErrFailedToUpdate
	}
	return p, nil
}

// DeleteProduct removes a Product by ID.
func (r *implRepository) DeleteProduct(ctx context.Context, id int64) error {
	const query = `DELETE FROM products WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProduct"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) queryProducts(ctx context.Context, query string, args ...any) ([]product.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []product.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
