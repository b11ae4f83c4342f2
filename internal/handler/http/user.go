package http

import (
	"net/http"

	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/service"
	"github.com/MKhiriev/my-gram/internal/utils"
	"github.com/MKhiriev/my-gram/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterRequest
	if !decodeBody(w, r, &request) {
		return
	}

	user, err := h.services.UserService.Register(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.ID).Msg("user registered")
	writeResponse(w, r, models.UserResponse{User: user}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if !decodeBody(w, r, &request) {
		return
	}

	token, err := h.services.UserService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", token.UserID()).Msg("user logged in")
	writeResponse(w, r, models.LoginResponse{Token: token.String()}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	userID := idParam(r, "userId")
	if err := h.services.UserService.Authorize(r.Context(), requester, userID); err != nil {
		writeError(w, r, err)
		return
	}

	var update models.UserUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	user, err := h.services.UserService.Update(r.Context(), requester, userID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.UserResponse{User: user}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	message, err := h.services.UserService.Delete(r.Context(), requester, idParam(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.MessageResponse{Message: message}, http.StatusOK)
}

// decodeBody reads the JSON body into dst. Malformed or empty bodies are
// answered as invalid input and false is returned.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.ReadJSON(r, dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, &service.Error{Kind: service.KindInvalidInput, Message: msgInvalidRequestBody, Err: err})
		return false
	}
	return true
}
