// Package validation validador compartido de formularios (go-playground/validator).
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storemax-web/internal/domain"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
)

// Validator instancia compartida; validator.Validate es seguro para uso concurrente.
var Validator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Nombres de campo según la etiqueta json (mensajes coherentes con el body).
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// decimal.Decimal se valida como número (gt, gte, lte...).
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// storerole: uno de los cuatro roles, sin normalizar mayúsculas.
	_ = v.RegisterValidation("storerole", func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).Valid()
	})

	// notblank: no vacío tras recortar espacios.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// ValidateStruct valida s y devuelve un error con mensaje legible para la vista.
func ValidateStruct(s any) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &Error{Field: verrs[0].Field(), Message: message(verrs[0])}
	}
	return err
}

// Error primer fallo de validación de un formulario.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return domain.ErrInvalidInput }

func message(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", label, fe.Param())
	case "eqfield":
		return "Passwords do not match"
	case "storerole":
		return fmt.Sprintf("Invalid role: %v", fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// humanize "confirm_password" -> "Confirm password".
func humanize(field string) string {
	s := strings.ReplaceAll(field, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
