package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate instancia única del validador (go-playground) sobre los tags `validate:` de los DTOs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO y devuelve un error legible con el primer campo inválido.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return fmt.Errorf("campo %s inválido (regla %s)", fe.Field(), fe.Tag())
	}
	return err
}
