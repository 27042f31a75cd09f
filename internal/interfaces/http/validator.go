package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia única de go-playground/validator para todos los handlers.
var validate = validator.New()

// validateStruct valida un DTO con sus tags `validate` y devuelve un mensaje
// legible por campo. Todo DTO de mutación pasa por aquí antes de abrir transacción.
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", fe.Field())
	case "min":
		return fmt.Sprintf("%s debe ser al menos %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s no debe exceder %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s es inválido (%s)", fe.Field(), fe.Tag())
	}
}
