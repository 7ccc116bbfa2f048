package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// hourlyRate -> Hourly Rate, join_date -> Join Date
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	caser := cases.Title(language.English)
	return caser.String(b.String())
}

func fieldMessage(e validator.FieldError) string {
	name := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email"
	case "min":
		return name + " must be at least " + e.Param()
	case "gte":
		return name + " must be greater than or equal to " + e.Param()
	case "oneof":
		return name + " must be one of: " + e.Param()
	default:
		return name + " is invalid"
	}
}

// MapValidationError turns binding errors into a 400 carrying every offending field.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		first := errs[0]
		var appErr *AppError
		if first.Tag() == "required" {
			appErr = RequiredField(formatFieldName(first.Field()))
		} else {
			appErr = InvalidField(formatFieldName(first.Field()))
		}
		appErr.Err = err
		return appErr
	}

	return Wrap(err, CodeValidationError, "Invalid input", http.StatusBadRequest)
}

func validationDetails(err error) []FieldError {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	out := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldError{Field: e.Field(), Message: fieldMessage(e)})
	}
	return out
}
