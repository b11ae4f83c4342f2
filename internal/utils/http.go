package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyRequestBody is returned by ReadJSON when the request carries no body.
var ErrEmptyRequestBody = errors.New("request body is empty")

// maxRequestBodySize caps the number of bytes ReadJSON will consume.
const maxRequestBodySize = 1 << 20

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes the JSON body of r into dst.
//
// Unknown fields are ignored. An absent or empty body yields
// [ErrEmptyRequestBody]; any syntax or type mismatch is returned wrapped.
func ReadJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyRequestBody
	}

	err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize)).Decode(dst)
	switch {
	case errors.Is(err, io.EOF):
		return ErrEmptyRequestBody
	case err != nil:
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	return nil
}
