package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/my-gram/models"
	"github.com/go-resty/resty/v2"
)

var statusErrorMap = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

// errorEnvelope mirrors the server error body; message is either a string
// or a list of field errors.
type errorEnvelope struct {
	Code    int             `json:"code"`
	Message json.RawMessage `json:"message"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode(), kind: ErrUnexpectedStatus}
	if kind, ok := statusErrorMap[resp.StatusCode()]; ok {
		apiErr.kind = kind
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil || len(envelope.Message) == 0 {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode())
		}
		return apiErr
	}

	var fields []models.FieldError
	if err := json.Unmarshal(envelope.Message, &fields); err == nil {
		apiErr.Fields = fields
		return apiErr
	}
	_ = json.Unmarshal(envelope.Message, &apiErr.Message)

	return apiErr
}
