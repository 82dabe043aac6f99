package usecase

import (
	"context"

	"product-catalog/internal/product"
	repo "product-catalog/internal/product/repository"
)

// Create validates input and persists a new Product. There is no uniqueness rule on any field.
func (uc *implUseCase) Create(ctx context.Context, input product.ProductInput) (product.ProductOutput, error) {
	if err := product.ValidateInput(input); err != nil {
		return product.ProductOutput{}, err
	}

	uc.l.Infof(ctx, "Creating new product: %s", input.Name)

	var created product.Product
	err := uc.repo.WithinTx(ctx, readWrite, func(ctx context.Context, tx repo.ProductRepository) error {
		var err error
		created, err = tx.CreateProduct(ctx, toCreateOptions(input))
		return err
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateProduct: %v", err)
		return product.ProductOutput{}, err
	}

	uc.l.Infof(ctx, "Product created with ID: %d", created.ID)
	return toOutput(created), nil
}
