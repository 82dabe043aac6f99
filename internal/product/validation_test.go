package product_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-catalog/internal/product"
)

func validInput() product.ProductInput {
	price := decimal.RequireFromString("999.99")
	qty := 10
	return product.ProductInput{
		Name:        "iPhone 15",
		Description: "Latest smartphone",
		Price:       &price,
		Quantity:    &qty,
		Category:    "Electronics",
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *product.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func TestValidateInput(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, product.ValidateInput(validInput()))
	})

	t.Run("Minimum Price And Zero Quantity", func(t *testing.T) {
		in := validInput()
		price := decimal.RequireFromString("0.01")
		qty := 0
		in.Price, in.Quantity = &price, &qty
		assert.NoError(t, product.ValidateInput(in))
	})

	t.Run("Optional Fields Empty", func(t *testing.T) {
		in := validInput()
		in.Description, in.Category = "", ""
		assert.NoError(t, product.ValidateInput(in))
	})

	t.Run("Blank Name", func(t *testing.T) {
		for _, name := range []string{"", "   ", "\t\n"} {
			in := validInput()
			in.Name = name
			fields := fieldsOf(t, product.ValidateInput(in))
			assert.Equal(t, "Product name is required", fields["name"])
			assert.Len(t, fields, 1)
		}
	})

	t.Run("Name Too Long", func(t *testing.T) {
		in := validInput()
		in.Name = strings.Repeat("a", 101)
		fields := fieldsOf(t, product.ValidateInput(in))
		assert.Equal(t, "Product name must not exceed 100 characters", fields["name"])

		in.Name = strings.Repeat("é", 100)
		assert.NoError(t, product.ValidateInput(in))
	})

	t.Run("Description And Category Too Long", func(t *testing.T) {
		in := validInput()
		in.Description = strings.Repeat("d", 501)
		in.Category = strings.Repeat("c", 51)
		fields := fieldsOf(t, product.ValidateInput(in))
		assert.Equal(t, "Description must not exceed 500 characters", fields["description"])
		assert.Equal(t, "Category must not exceed 50 characters", fields["category"])
	})

	t.Run("Price Missing", func(t *testing.T) {
		in := validInput()
		in.Price = nil
		fields := fieldsOf(t, product.ValidateInput(in))
		assert.Equal(t, "Price is required", fields["price"])
	})

	t.Run("Price Too Low", func(t *testing.T) {
		for _, raw := range []string{"0", "0.00", "0.009", "-5"} {
			in := validInput()
			price := decimal.RequireFromString(raw)
			in.Price = &price
			fields := fieldsOf(t, product.ValidateInput(in))
			assert.Equal(t, "Price must be greater than 0", fields["price"], raw)
		}
	})

	t.Run("Price Fits Column", func(t *testing.T) {
		for _, raw := range []string{"1.50", "999.99", "10", "99999999999999999.99"} {
			in := validInput()
			price := decimal.RequireFromString(raw)
			in.Price = &price
			assert.NoError(t, product.ValidateInput(in), raw)
		}
	})

	t.Run("Price Too Many Decimals", func(t *testing.T) {
		for _, raw := range []string{"1.005", "0.011", "19.999"} {
			in := validInput()
			price := decimal.RequireFromString(raw)
			in.Price = &price
			fields := fieldsOf(t, product.ValidateInput(in))
			assert.Equal(t, "Price must have at most 2 decimal places", fields["price"], raw)
		}
	})

	t.Run("Price Too Many Integer Digits", func(t *testing.T) {
		for _, raw := range []string{"100000000000000000", "123456789012345678.00"} {
			in := validInput()
			price := decimal.RequireFromString(raw)
			in.Price = &price
			fields := fieldsOf(t, product.ValidateInput(in))
			assert.Equal(t, "Price must have at most 17 integer digits", fields["price"], raw)
		}
	})

	t.Run("Quantity Missing Or Negative", func(t *testing.T) {
		in := validInput()
		in.Quantity = nil
		fields := fieldsOf(t, product.ValidateInput(in))
		assert.Equal(t, "Quantity is required", fields["quantity"])

		neg := -1
		in.Quantity = &neg
		fields = fieldsOf(t, product.ValidateInput(in))
		assert.Equal(t, "Quantity must be at least 0", fields["quantity"])
	})

	t.Run("All Violations Collected", func(t *testing.T) {
		zero := decimal.Zero
		in := product.ProductInput{Name: "", Price: &zero}
		fields := fieldsOf(t, product.ValidateInput(in))
		assert.Equal(t, "Product name is required", fields["name"])
		assert.Equal(t, "Price must be greater than 0", fields["price"])
		assert.Equal(t, "Quantity is required", fields["quantity"])
		assert.Len(t, fields, 3)
	})
}

func TestErrorKinds(t *testing.T) {
	nf := product.NewNotFoundError(7)
	assert.True(t, product.IsNotFound(nf))
	assert.Equal(t, "Product not found with id : '7'", nf.Error())

	ia := product.NewInvalidArgumentError(product.ErrInvalidSortField, "bogus")
	assert.True(t, product.IsInvalidArgument(ia))
	assert.ErrorIs(t, ia, product.ErrInvalidSortField)
	assert.False(t, product.IsNotFound(ia))

	ve := &product.ValidationError{Fields: map[string]string{"price": "b", "name": "a"}}
	assert.True(t, product.IsValidation(ve))
	assert.Equal(t, "validation failed: name: a; price: b", ve.Error())
}
