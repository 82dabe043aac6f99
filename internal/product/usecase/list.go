package usecase

import (
	"context"

	"product-catalog/internal/product"
	repo "product-catalog/internal/product/repository"
	"product-catalog/pkg/paginator"
)

// List returns every Product by id ascending.
func (uc *implUseCase) List(ctx context.Context) ([]product.ProductOutput, error) {
	uc.l.Info(ctx, "Fetching all products")
	return uc.list(ctx, "uc.List", repo.Filter{})
}

// ListByCategory returns Products whose category matches exactly.
func (uc *implUseCase) ListByCategory(ctx context.Context, input product.ListByCategoryInput) ([]product.ProductOutput, error) {
	uc.l.Infof(ctx, "Fetching products by category: %s", input.Category)
	return uc.list(ctx, "uc.ListByCategory", repo.Filter{
		Category:   input.Category,
		ActiveOnly: input.ActiveOnly,
	})
}

// ListActive returns Products flagged active.
func (uc *implUseCase) ListActive(ctx context.Context) ([]product.ProductOutput, error) {
	uc.l.Info(ctx, "Fetching active products")
	return uc.list(ctx, "uc.ListActive", repo.Filter{ActiveOnly: true})
}

// Search does a case-insensitive substring match on name or description.
func (uc *implUseCase) Search(ctx context.Context, input product.SearchInput) ([]product.ProductOutput, error) {
	opt, err := resolveSearch(input)
	if err != nil {
		return nil, err
	}

	uc.l.Infof(ctx, "Searching products with keyword: %s", input.Keyword)

	var found []product.Product
	err = uc.repo.WithinTx(ctx, readOnly, func(ctx context.Context, tx repo.ProductRepository) error {
		var err error
		found, err = tx.SearchProducts(ctx, opt)
		return err
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search SearchProducts: %v", err)
		return nil, err
	}
	return toOutputs(found), nil
}

// ListPaged returns one page of Products ordered by input.SortBy, ties broken by id ascending.
func (uc *implUseCase) ListPaged(ctx context.Context, input product.ListPagedInput) (paginator.Page[product.ProductOutput], error) {
	if err := validatePaging(input.Page, input.Size); err != nil {
		return paginator.Page[product.ProductOutput]{}, err
	}
	order, err := resolveOrder(input.SortBy, input.SortDir)
	if err != nil {
		return paginator.Page[product.ProductOutput]{}, err
	}

	uc.l.Infof(ctx, "Fetching products - page: %d, size: %d, sortBy: %s, sortDir: %s",
		input.Page, input.Size, input.SortBy, input.SortDir)

	var (
		rows  []product.Product
		total int64
	)
	err = uc.repo.WithinTx(ctx, readOnly, func(ctx context.Context, tx repo.ProductRepository) error {
		var err error
		rows, total, err = tx.PageProducts(ctx, repo.PageProductsOptions{
			Filter:  repo.Filter{ActiveOnly: input.ActiveOnly},
			OrderBy: order,
			Limit:   input.Size,
			Offset:  paginator.Offset(input.Page, input.Size),
		})
		return err
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListPaged PageProducts: %v", err)
		return paginator.Page[product.ProductOutput]{}, err
	}

	return paginator.New(toOutputs(rows), input.Page, input.Size, total), nil
}

func (uc *implUseCase) list(ctx context.Context, op string, f repo.Filter) ([]product.ProductOutput, error) {
	var rows []product.Product
	err := uc.repo.WithinTx(ctx, readOnly, func(ctx context.Context, tx repo.ProductRepository) error {
		var err error
		rows, err = tx.ListProducts(ctx, repo.ListProductsOptions{Filter: f})
		return err
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s ListProducts: %v", op, err)
		return nil, err
	}
	return toOutputs(rows), nil
}
