// Package validator valida structs de entrada (DTOs) con go-playground.
package validator

import "github.com/go-playground/validator/v10"

// FieldError describe un campo que falló la validación.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

var validate = validator.New()

// ValidateStruct valida las etiquetas `validate` del struct y devuelve los
// campos fallidos; vacío si todo es válido.
func ValidateStruct(data any) []FieldError {
	var failures []FieldError
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			failures = append(failures, FieldError{
				Field: fe.StructNamespace(),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}
	}
	return failures
}
