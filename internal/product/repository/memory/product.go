package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"product-catalog/internal/product"
	repo "product-catalog/internal/product/repository"
)

func (r *implRepository) CreateProduct(ctx context.Context, opt repo.CreateProductOptions) (product.Product, error) {
	if err := ctx.Err(); err != nil {
		return product.Product{}, err
	}
	unlock, err := r.lock()
	if err != nil {
		return product.Product{}, err
	}
	defer unlock()

	r.s.nextID++
	now := r.s.now()
	p := product.Product{
		ID:          r.s.nextID,
		Name:        opt.Name,
		Description: opt.Description,
		Price:       opt.Price,
		Quantity:    opt.Quantity,
		Category:    opt.Category,
		IsActive:    opt.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.s.products[p.ID] = p
	return p, nil
}

// GetOneProduct returns the zero Product when id is unknown. ForUpdate is implied by the tx lock.
func (r *implRepository) GetOneProduct(ctx context.Context, opt repo.GetOneProductOptions) (product.Product, error) {
	if err := ctx.Err(); err != nil {
		return product.Product{}, err
	}
	defer r.rlock()()

	return r.s.products[opt.ID], nil
}

func (r *implRepository) ListProducts(ctx context.Context, opt repo.ListProductsOptions) ([]product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.rlock()()

	out := r.filtered(func(p product.Product) bool { return matchFilter(p, opt.Filter) })
	sortProducts(out, repo.OrderBy{Column: repo.ColumnID})
	return out, nil
}

func (r *implRepository) SearchProducts(ctx context.Context, opt repo.SearchProductsOptions) ([]product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.rlock()()

	kw := strings.ToLower(opt.Keyword)
	out := r.filtered(func(p product.Product) bool {
		if strings.Contains(strings.ToLower(p.Name), kw) {
			return true
		}
		return !opt.NameOnly && strings.Contains(strings.ToLower(p.Description), kw)
	})
	sortProducts(out, repo.OrderBy{Column: repo.ColumnID})
	return out, nil
}

func (r *implRepository) PageProducts(ctx context.Context, opt repo.PageProductsOptions) ([]product.Product, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	defer r.rlock()()

	all := r.filtered(func(p product.Product) bool { return matchFilter(p, opt.Filter) })
	sortProducts(all, opt.OrderBy)

	total := int64(len(all))
	start := min(max(opt.Offset, 0), len(all))
	end := len(all)
	if opt.Limit > 0 {
		end = start + min(opt.Limit, len(all)-start)
	}
	return slices.Clone(all[start:end]), total, nil
}

// UpdateProduct returns the zero Product when id is unknown.
func (r *implRepository) UpdateProduct(ctx context.Context, opt repo.UpdateProductOptions) (product.Product, error) {
	if err := ctx.Err(); err != nil {
		return product.Product{}, err
	}
	unlock, err := r.lock()
	if err != nil {
		return product.Product{}, err
	}
	defer unlock()

	p, ok := r.s.products[opt.ID]
	if !ok {
		return product.Product{}, nil
	}
	p.Name = opt.Name
	p.Description = opt.Description
	p.Price = opt.Price
	p.Quantity = opt.Quantity
	p.Category = opt.Category
	p.IsActive = opt.IsActive
	if now := r.s.now(); now.After(p.UpdatedAt) {
		p.UpdatedAt = now
	}
	r.s.products[p.ID] = p
	return p, nil
}

func (r *implRepository) DeleteProduct(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock, err := r.lock()
	if err != nil {
		return err
	}
	defer unlock()

	delete(r.s.products, id)
	return nil
}

func (r *implRepository) filtered(keep func(product.Product) bool) []product.Product {
	out := []product.Product{}
	for _, p := range r.s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func matchFilter(p product.Product, f repo.Filter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.ActiveOnly && !p.IsActive {
		return false
	}
	return true
}

// sortProducts orders by the requested column, then id ascending.
func sortProducts(ps []product.Product, o repo.OrderBy) {
	slices.SortFunc(ps, func(a, b product.Product) int {
		c := compareColumn(a, b, o.Column)
		if o.Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func compareColumn(a, b product.Product, col repo.Column) int {
	switch col {
	case repo.ColumnName:
		return strings.Compare(a.Name, b.Name)
	case repo.ColumnDescription:
		return strings.Compare(a.Description, b.Description)
	case repo.ColumnPrice:
		return a.Price.Cmp(b.Price)
	case repo.ColumnQuantity:
		return cmp.Compare(a.Quantity, b.Quantity)
	case repo.ColumnCategory:
		return strings.Compare(a.Category, b.Category)
	case repo.ColumnIsActive:
		return cmp.Compare(boolRank(a.IsActive), boolRank(b.IsActive))
	case repo.ColumnCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case repo.ColumnUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		return cmp.Compare(a.ID, b.ID)
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
