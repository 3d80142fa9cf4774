package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-tickets/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)
	validator.RegisterValidation("ticket_type", validateTicketType)

	return validator
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	return name
}

func validateTicketType(fl validator.FieldLevel) bool {
	_, ok := domain.ParseTicketType(fl.Field().String())
	return ok
}

// FieldPath returns the JSON path of the failing field without the top-level
// struct name, e.g. "ticketTypeRequests[0].type".
func FieldPath(err validator.FieldError) string {
	namespace := err.Namespace()

	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}

	return namespace
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "ticket_type":
		return "must be one of ADULT, CHILD, INFANT"
	default:
		return "is invalid"
	}
}
