package requisition

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	domain "seismic-catalog/internal/domain/requisition"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateCreate reports the first offending field as a *ValidationError,
// using JSON paths such as "dataTypes[0].typeOfData".
func validateCreate(v *validator.Validate, in *CreateInput) error {
	in.Subject = strings.TrimSpace(in.Subject)
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return &domain.ValidationError{Field: "_", Reason: err.Error()}
	}
	fe := ve[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	return &domain.ValidationError{Field: field, Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return fe.Tag() + " validation failed"
	}
}
