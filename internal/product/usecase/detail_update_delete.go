package usecase

import (
	"context"

	"product-catalog/internal/product"
	repo "product-catalog/internal/product/repository"
)

// Detail retrieves a single Product by ID. Returns a NotFoundError when absent.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (product.ProductOutput, error) {
	uc.l.Infof(ctx, "Fetching product with ID: %d", id)

	var found product.Product
	err := uc.repo.WithinTx(ctx, readOnly, func(ctx context.Context, tx repo.ProductRepository) error {
		var err error
		found, err = uc.mustGet(ctx, tx, id, false)
		return err
	})
	if err != nil {
		return product.ProductOutput{}, err
	}
	return toOutput(found), nil
}

// Update replaces the mutable fields of an existing Product. The row is locked
// between the read and the write so concurrent mutations cannot interleave.
func (uc *implUseCase) Update(ctx context.Context, id int64, input product.ProductInput) (product.ProductOutput, error) {
	if err := product.ValidateInput(input); err != nil {
		return product.ProductOutput{}, err
	}

	uc.l.Infof(ctx, "Updating product with ID: %d", id)

	var updated product.Product
	err := uc.repo.WithinTx(ctx, readWrite, func(ctx context.Context, tx repo.ProductRepository) error {
		existing, err := uc.mustGet(ctx, tx, id, true)
		if err != nil {
			return err
		}

		updated, err = tx.UpdateProduct(ctx, toUpdateOptions(existing, input))
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update UpdateProduct: %v", err)
			return err
		}
		if updated.ID == 0 {
			return product.NewNotFoundError(id)
		}
		return nil
	})
	if err != nil {
		return product.ProductOutput{}, err
	}

	uc.l.Infof(ctx, "Product updated successfully: %d", updated.ID)
	return toOutput(updated), nil
}

// Delete removes a Product by ID. Returns a NotFoundError when absent.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	uc.l.Infof(ctx, "Deleting product with ID: %d", id)

	err := uc.repo.WithinTx(ctx, readWrite, func(ctx context.Context, tx repo.ProductRepository) error {
		if _, err := uc.mustGet(ctx, tx, id, true); err != nil {
			return err
		}
		if err := tx.DeleteProduct(ctx, id); err != nil {
			uc.l.Errorf(ctx, "uc.Delete DeleteProduct: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.l.Infof(ctx, "Product deleted successfully: %d", id)
	return nil
}

// mustGet fetches a Product or fails with NotFoundError.
func (uc *implUseCase) mustGet(ctx context.Context, tx repo.ProductRepository, id int64, forUpdate bool) (product.Product, error) {
	p, err := tx.GetOneProduct(ctx, repo.GetOneProductOptions{ID: id, ForUpdate: forUpdate})
	if err != nil {
		uc.l.Errorf(ctx, "uc.mustGet GetOneProduct: %v", err)
		return product.Product{}, err
	}
	if p.ID == 0 {
		return product.Product{}, product.NewNotFoundError(id)
	}
	return p, nil
}
