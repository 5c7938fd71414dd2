// Package validator plugs go-playground/validator into echo's Validate hook.
package validator

import (
	"reflect"
	"strings"

	domainerrors "pescastur/internal/domain/errors"
	"pescastur/internal/errors"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report wire names (json or form tag) instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	return &CustomValidator{validate: v}
}

// Validate returns ErrValidationFailed with one "field:tag" entry per violation.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, fe.Namespace()+":"+fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, ", "))
}
