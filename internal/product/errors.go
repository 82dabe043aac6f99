package product

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const EntityName = "Product"

var (
	ErrInvalidSortField     = errors.New("invalid sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrInvalidPage          = errors.New("page index must not be less than zero")
	ErrInvalidPageSize      = errors.New("page size must be greater than zero")
	ErrEmptyKeyword         = errors.New("keyword is required")
	ErrInvalidSearchField   = errors.New("invalid search field")
)

// NotFoundError reports a lookup by Field=Value that matched nothing.
type NotFoundError struct {
	Entity string
	Field  string
	Value  any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s : '%v'", e.Entity, e.Field, e.Value)
}

// NewNotFoundError returns a NotFoundError for the product with the given id.
func NewNotFoundError(id int64) error {
	return &NotFoundError{Entity: EntityName, Field: "id", Value: id}
}

// ValidationError carries every violated field with its message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// InvalidArgumentError is a client mistake in query parameters (sorting, paging, search).
type InvalidArgumentError struct {
	Err    error
	Detail string
}

func (e *InvalidArgumentError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Detail)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// NewInvalidArgumentError wraps a sentinel with the offending detail.
func NewInvalidArgumentError(err error, detail string) error {
	return &InvalidArgumentError{Err: err, Detail: detail}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsInvalidArgument(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}
