package http

import (
	"net/http"

	"github.com/MKhiriev/my-gram/models"
)

func (h *Handler) listPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.services.PhotoService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.PhotosResponse{Photos: photos}, http.StatusOK)
}

// createPhoto answers with the bare photo, not wrapped into {"photo"}.
func (h *Handler) createPhoto(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	var input models.PhotoInput
	if !decodeBody(w, r, &input) {
		return
	}

	photo, err := h.services.PhotoService.Create(r.Context(), requester, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, photo, http.StatusCreated)
}

func (h *Handler) getPhoto(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	photo, err := h.services.PhotoService.Get(r.Context(), requester, idParam(r, "photoId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, photo, http.StatusOK)
}

// updatePhoto runs the ownership checks before decoding the body, so a
// missing or foreign photo is answered the same for any payload.
func (h *Handler) updatePhoto(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	photoID := idParam(r, "photoId")
	if err := h.services.PhotoService.Authorize(r.Context(), requester, photoID); err != nil {
		writeError(w, r, err)
		return
	}

	var update models.PhotoUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	photo, err := h.services.PhotoService.Update(r.Context(), requester, photoID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.PhotoResponse{Photo: photo}, http.StatusOK)
}

func (h *Handler) deletePhoto(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	message, err := h.services.PhotoService.Delete(r.Context(), requester, idParam(r, "photoId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.MessageResponse{Message: message}, http.StatusOK)
}
