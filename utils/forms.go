package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors turns a gin binding error into per-field messages keyed by
// the lowercased struct field name, matching the template input names.
// A non-validator error (malformed body) maps to a single "form" entry.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "Invalid form submission."
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "This field is required."
		case "email":
			out[field] = "Enter a valid e-mail address."
		case "min":
			out[field] = fmt.Sprintf("Must be at least %s characters long.", fe.Param())
		case "max":
			out[field] = fmt.Sprintf("Must be at most %s characters long.", fe.Param())
		case "eqfield":
			out[field] = "Passwords do not match."
		default:
			out[field] = "Invalid value."
		}
	}
	return out
}
