package http

import (
	"errors"
	"net/http"

	"product-catalog/internal/product"
	pkgErrors "product-catalog/pkg/errors"
)

var (
	errMalformedBody = errors.New("malformed JSON request")
	errInvalidID     = errors.New("invalid product id")
	errInvalidQuery  = errors.New("invalid query parameter")
)

const msgValidationFailed = "Validation failed"

// mapError is the single place where product errors become HTTP errors.
func (h *handler) mapError(err error) error {
	var (
		notFound *product.NotFoundError
		invalid  *product.ValidationError
		badArg   *product.InvalidArgumentError
	)

	switch {
	case errors.As(err, &notFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, notFound.Error())
	case errors.As(err, &invalid):
		return pkgErrors.NewHTTPErrorWithData(http.StatusBadRequest, msgValidationFailed, invalid.Fields)
	case errors.As(err, &badArg):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, badArg.Error())
	default:
		return pkgErrors.NewInternalError(err)
	}
}
