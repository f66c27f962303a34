package validator

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Domenick1991/flights/internal/domain"
	val "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	airportCodeMin = 3
	airportCodeMax = 5
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// required only rejects ""; whitespace-only text counts as missing too.
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("airport", func(fl val.FieldLevel) bool {
		n := utf8.RuneCountInString(fl.Field().String())
		return n >= airportCodeMin && n <= airportCodeMax
	}); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("flightstatus", func(fl val.FieldLevel) bool {
		return domain.FlightStatus(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
}

// Errors maps a field name to the messages of every rule it violated.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Set replaces whatever was recorded for field.
func (e Errors) Set(field, msg string) {
	e[field] = []string{msg}
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(e))
	for _, f := range fields {
		parts = append(parts, strings.Join(e[f], " "))
	}
	return strings.Join(parts, " ")
}

// Flight checks every field rule of f and returns all violations, or nil when f is valid.
func Flight(f *domain.Flight) Errors {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	errs := Errors{}
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		errs.Add("Flight", err.Error())
		return errs
	}
	for _, fe := range valErrors {
		errs.Add(fe.StructField(), message(fe))
	}
	return errs
}
