package product

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// fieldKeys maps struct fields of ProductInput to the keys clients see.
var fieldKeys = map[string]string{
	"Name":        "name",
	"Description": "description",
	"Price":       "price",
	"Quantity":    "quantity",
	"Category":    "category",
}

// fieldMessages is keyed by "<Field>.<tag>".
var fieldMessages = map[string]string{
	"Name.notblank":     "Product name is required",
	"Name.max":          "Product name must not exceed 100 characters",
	"Description.max":   "Description must not exceed 500 characters",
	"Price.required":    "Price is required",
	"Price.dgte":        "Price must be greater than 0",
	"Price.dscale":      "Price must have at most 2 decimal places",
	"Price.dintdigits":  "Price must have at most 17 integer digits",
	"Quantity.required": "Quantity is required",
	"Quantity.gte":      "Quantity must be at least 0",
	"Category.max":      "Category must not exceed 50 characters",
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("notblank", notBlank)
		_ = v.RegisterValidation("dgte", decimalGTE)
		_ = v.RegisterValidation("dscale", decimalScale)
		_ = v.RegisterValidation("dintdigits", decimalIntDigits)
		validate = v
	})
	return validate
}

// decimalValue lets tags see a decimal.Decimal as its canonical string.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func decimalGTE(fl validator.FieldLevel) bool {
	val, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	floor, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return val.GreaterThanOrEqual(floor)
}

// decimalScale reports whether the value has at most Param() fractional digits.
func decimalScale(fl validator.FieldLevel) bool {
	val, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return val.Equal(val.Round(int32(n)))
}

// decimalIntDigits reports whether the integer part has at most Param() digits.
func decimalIntDigits(fl validator.FieldLevel) bool {
	val, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return val.Abs().LessThan(decimal.New(1, int32(n)))
}

// ValidateInput checks every constraint on input and reports all violations at once.
// It returns nil or a *ValidationError.
func ValidateInput(input ProductInput) error {
	err := getValidator().Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key, ok := fieldKeys[fe.StructField()]
		if !ok {
			key = strings.ToLower(fe.StructField())
		}
		fields[key] = formatFieldError(fe)
	}
	return &ValidationError{Fields: fields}
}

func formatFieldError(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.StructField()+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required"
	case "max":
		return "Maximum length is " + fe.Param()
	default:
		return "Validation failed on " + fe.Tag()
	}
}
