package validator

import (
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":     "{field} is required.",
		"notblank":     "{field} is required.",
		"max":          "{field} cannot exceed {param} characters.",
		"airport":      "{field} must be 3-5 characters.",
		"gtfield":      "{field} must be after {param}.",
		"flightstatus": "Invalid FlightStatus value.",
	}
)

func message(fe val.FieldError) string {
	msg, ok := messages[fe.Tag()]
	if !ok {
		return fe.Error()
	}
	msg = strings.ReplaceAll(msg, "{field}", fe.StructField())
	return strings.ReplaceAll(msg, "{param}", fe.Param())
}
