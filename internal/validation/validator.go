package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// accountKinds lists the account kinds accepted by the account_kind rule
var accountKinds = map[string]bool{
	"basic":       true,
	"interest":    true,
	"fee_savings": true,
	"child":       true,
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimal.Decimal is validated through its string form so the rules below
	// never lose precision
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
	_ = v.RegisterValidation("non_negative_decimal", validateNonNegativeDecimal)
	_ = v.RegisterValidation("account_name", validateAccountName)
	_ = v.RegisterValidation("account_kind", validateAccountKind)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns the underlying validator error, if any
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens a validation error into "field: reason" messages
func FieldErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err == nil {
			return nil
		}
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), describeTag(fe.Tag())))
	}
	return details
}

func describeTag(tag string) string {
	switch tag {
	case "positive_decimal":
		return "must be greater than zero"
	case "non_negative_decimal":
		return "must not be negative"
	case "account_name":
		return "is required"
	case "account_kind":
		return "unknown account kind"
	default:
		return "failed " + tag + " validation"
	}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// Custom validation functions

// validatePositiveDecimal validates that a decimal amount is greater than 0
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// validateNonNegativeDecimal validates that a decimal amount is 0 or more
func validateNonNegativeDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

// validateAccountName validates that an account name is not blank
func validateAccountName(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateAccountKind validates that account kind is one of the known kinds
func validateAccountKind(fl validator.FieldLevel) bool {
	return accountKinds[fl.Field().String()]
}
