package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/my-gram/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrEmptyBaseURL = errors.New("empty address")
)

// APIError is a decoded error response of the server.
//
// Message holds the textual message; for validation failures it is empty
// and Fields lists the rejected fields instead.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []models.FieldError

	kind error
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("http %d: %v: %d invalid field(s)", e.StatusCode, e.kind, len(e.Fields))
	}
	return fmt.Sprintf("http %d: %v: %s", e.StatusCode, e.kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
