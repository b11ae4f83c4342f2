package http

import (
	"net/http"

	"github.com/MKhiriev/my-gram/models"
)

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	comments, err := h.services.CommentService.List(r.Context(), requester)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.CommentsResponse{Comments: comments}, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	var input models.CommentInput
	if !decodeBody(w, r, &input) {
		return
	}

	comment, err := h.services.CommentService.Create(r.Context(), requester, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.CommentResponse{Comment: comment}, http.StatusCreated)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	commentID := idParam(r, "commentId")
	if err := h.services.CommentService.Authorize(r.Context(), requester, commentID); err != nil {
		writeError(w, r, err)
		return
	}

	var update models.CommentUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	comment, err := h.services.CommentService.Update(r.Context(), requester, commentID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.CommentResponse{Comment: comment}, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterID(w, r)
	if !ok {
		return
	}

	message, err := h.services.CommentService.Delete(r.Context(), requester, idParam(r, "commentId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.MessageResponse{Message: message}, http.StatusOK)
}
