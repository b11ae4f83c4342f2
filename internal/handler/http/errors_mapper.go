package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/service"
	"github.com/MKhiriev/my-gram/internal/utils"
	"github.com/MKhiriev/my-gram/models"
)

var kindStatusMap = map[service.Kind]int{
	service.KindInternal:        http.StatusInternalServerError,
	service.KindUnauthenticated: http.StatusUnauthorized,
	service.KindForbidden:       http.StatusForbidden,
	service.KindNotFound:        http.StatusNotFound,
	service.KindInvalidInput:    http.StatusBadRequest,
	service.KindConflict:        http.StatusConflict,
}

func statusFromKind(kind service.Kind) int {
	if status, ok := kindStatusMap[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// errorResponse builds the error envelope for err. Validation failures carry
// the field list as the message; anything that is not a *service.Error is
// reported as an internal error without detail.
func errorResponse(err error) models.ErrorResponse {
	var serviceErr *service.Error
	if !errors.As(err, &serviceErr) || serviceErr.Kind == service.KindInternal {
		return models.ErrorResponse{Code: http.StatusInternalServerError, Message: service.MsgInternal}
	}

	response := models.ErrorResponse{Code: statusFromKind(serviceErr.Kind), Message: serviceErr.Message}
	if len(serviceErr.Fields) > 0 {
		response.Message = serviceErr.Fields
	}

	return response
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	response := errorResponse(err)
	if response.Code == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", response.Code).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, response, response.Code); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

func writeMessage(w http.ResponseWriter, r *http.Request, code int, message string) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Code: code, Message: message}, code); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}

func writeResponse(w http.ResponseWriter, r *http.Request, data any, code int) {
	if _, err := utils.WriteJSON(w, data, code); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
