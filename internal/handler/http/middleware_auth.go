package http

import (
	"net/http"

	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/service"
	"github.com/MKhiriev/my-gram/internal/utils"
)

// tokenHeader is the request header carrying the access token. The raw
// token is sent as is, without an authentication scheme prefix.
const tokenHeader = "token"

// auth is an HTTP middleware that enforces token authentication.
//
// It resolves the "token" header to a user via
// [service.AuthService.Authenticate]. A missing, malformed, expired or
// orphaned token is rejected with 401 and the same body for every reason.
// On success the user is stored in the request context with
// [utils.WithUser] and the request logger is enriched with the user id.
//
// The middleware only establishes identity; ownership is decided by the
// services.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, err := h.services.AuthService.Authenticate(ctx, r.Header.Get(tokenHeader))
		if err != nil {
			writeError(w, r, err)
			return
		}

		log := logger.FromRequest(r).WithUserID(user.ID)
		ctx = log.WithContext(utils.WithUser(ctx, user))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requesterID returns the id of the authenticated user. When the auth
// middleware did not run it answers 500 and reports false.
func requesterID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(errNoUserInContext).Send()
		writeMessage(w, r, http.StatusInternalServerError, service.MsgInternal)
		return 0, false
	}
	return userID, true
}
