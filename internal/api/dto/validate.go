package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check runs struct validation and converts the first failure into a
// field-naming validation error.
func Check(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) && len(invalid) > 0 {
		field := invalid[0].Field()
		if invalid[0].Tag() == "required" {
			return apperrors.NewValidationError("you must specify a "+field, map[string]any{"field": field})
		}
		return apperrors.NewValidationError("invalid value for "+field, map[string]any{"field": field})
	}
	return apperrors.NewValidationError("invalid payload", nil)
}
