package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/my-gram/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError lists every rejected field of a payload.
// Fields are sorted by Path.
type ValidationError struct {
	Fields []models.FieldError
}

// Error joins the field errors into a single line.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Path+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldErrors extracts the field error list from err.
// ok is false when err is not (and does not wrap) a *ValidationError.
func FieldErrors(err error) ([]models.FieldError, bool) {
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		return nil, false
	}
	return validationErr.Fields, true
}
