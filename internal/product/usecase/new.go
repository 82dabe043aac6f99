package usecase

import (
	"product-catalog/internal/product"
	"product-catalog/internal/product/repository"
	"product-catalog/pkg/log"
)

// implUseCase is the private implementation of product.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ product.UseCase = (*implUseCase)(nil)

// New creates a new product UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

var (
	readOnly  = repository.TxOptions{ReadOnly: true}
	readWrite = repository.TxOptions{}
)
