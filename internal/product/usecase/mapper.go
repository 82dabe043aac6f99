package usecase

import (
	"product-catalog/internal/product"
	repo "product-catalog/internal/product/repository"
)

// toCreateOptions maps a validated input to the row to insert. Absent isActive means active.
func toCreateOptions(in product.ProductInput) repo.CreateProductOptions {
	opt := repo.CreateProductOptions{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		IsActive:    true,
	}
	if in.Price != nil {
		opt.Price = *in.Price
	}
	if in.Quantity != nil {
		opt.Quantity = *in.Quantity
	}
	if in.IsActive != nil {
		opt.IsActive = *in.IsActive
	}
	return opt
}

// toUpdateOptions overwrites every mutable field from in, except isActive which
// is only taken when supplied.
func toUpdateOptions(existing product.Product, in product.ProductInput) repo.UpdateProductOptions {
	opt := repo.UpdateProductOptions{
		ID:          existing.ID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		IsActive:    existing.IsActive,
	}
	if in.Price != nil {
		opt.Price = *in.Price
	}
	if in.Quantity != nil {
		opt.Quantity = *in.Quantity
	}
	if in.IsActive != nil {
		opt.IsActive = *in.IsActive
	}
	return opt
}

func toOutput(p product.Product) product.ProductOutput {
	return product.ProductOutput{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toOutputs(ps []product.Product) []product.ProductOutput {
	out := make([]product.ProductOutput, len(ps))
	for i, p := range ps {
		out[i] = toOutput(p)
	}
	return out
}
