package http

import (
	"net/http"

	"github.com/MKhiriev/my-gram/models"
)

func (h *Handler) listSocialMedias(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	socialMedias, err := h.services.SocialMediaService.List(r.Context(), requester)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.SocialMediasResponse{SocialMedias: socialMedias}, http.StatusOK)
}

func (h *Handler) createSocialMedia(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	var input models.SocialMediaInput
	if !decodeBody(w, r, &input) {
		return
	}

	socialMedia, err := h.services.SocialMediaService.Create(r.Context(), requester, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.SocialMediaResponse{SocialMedia: socialMedia}, http.StatusCreated)
}

func (h *Handler) updateSocialMedia(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	socialMediaID := idParam(r, "socialMediaId")
	if err := h.services.SocialMediaService.Authorize(r.Context(), requester, socialMediaID); err != nil {
		writeError(w, r, err)
		return
	}

	var update models.SocialMediaUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	socialMedia, err := h.services.SocialMediaService.Update(r.Context(), requester, socialMediaID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.SocialMediaResponse{SocialMedia: socialMedia}, http.StatusOK)
}

func (h *Handler) deleteSocialMedia(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	message, err := h.services.SocialMediaService.Delete(r.Context(), requester, idParam(r, "socialMediaId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.MessageResponse{Message: message}, http.StatusOK)
}
