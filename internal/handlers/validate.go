package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationMessage turns the first field error into the human-readable
// message the form shows; these never leak struct internals, only the wire
// field name and the rule that failed.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "datos no válidos"
	}
	fe := errs[0]
	field := wireNames[fe.StructField()]
	if field == "" {
		field = fe.StructField()
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es obligatorio", field)
	case "len", "numeric":
		return fmt.Sprintf("el campo %s debe tener exactamente 10 dígitos", field)
	case "email":
		return fmt.Sprintf("el formato del correo electrónico (%s) no es válido", field)
	case "min", "max":
		return fmt.Sprintf("el campo %s está fuera de rango", field)
	case "oneof":
		return fmt.Sprintf("el campo %s tiene un valor no permitido", field)
	case "datetime":
		return fmt.Sprintf("el campo %s debe tener formato YYYY-MM-DD", field)
	case "gt":
		return fmt.Sprintf("el campo %s debe ser mayor a 0", field)
	}
	return fmt.Sprintf("el campo %s no es válido", field)
}

// Struct field -> wire name, for validation messages.
var wireNames = map[string]string{
	"Name":        "nombreCompleto",
	"BirthDate":   "fechaNacimiento",
	"Behavior":    "comportamiento",
	"Tutor1Phone": "celularTutor1",
	"Tutor1Email": "correoTutor1",
	"Tutor2Phone": "celularTutor2",
	"Tutor2Email": "correoTutor2",
	"PayDay":      "fechaPago",
	"Age":         "edad",
	"Phone":       "celular",
	"Quantity":    "cantidad",
	"Price":       "precio",
	"Username":    "username",
	"Password":    "password",
	"Role":        "role",
}
