package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/my-gram/internal/config"
	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/service"
	"github.com/MKhiriev/my-gram/internal/utils"
	"github.com/MKhiriev/my-gram/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(h *Handler, token string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	unauthorized := &service.Error{Kind: service.KindUnauthenticated, Message: service.MsgUnauthorized}

	tests := []struct {
		name           string
		token          string
		authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
		expectedStatus int
		nextCalled     bool
		wantUserID     int64
	}{
		{
			name:  "no token header → 401",
			token: "",
			authenticateFn: func(_ context.Context, tokenString string) (models.User, error) {
				assert.Empty(t, tokenString)
				return models.User{}, unauthorized
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:  "token rejected → 401",
			token: "expired",
			authenticateFn: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, unauthorized
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:  "valid token → next called with user in context",
			token: "good",
			authenticateFn: func(_ context.Context, tokenString string) (models.User, error) {
				assert.Equal(t, "good", tokenString)
				return models.User{ID: 42, Email: "a@b.c"}, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantUserID:     42,
		},
		{
			name:  "unexpected failure → 500",
			token: "good",
			authenticateFn: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{
				AuthService: &mockAuthService{authenticateFn: tt.authenticateFn},
			}, config.Server{}, logger.Nop())

			nextCalled := false
			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.token, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.nextCalled {
				assert.Equal(t, tt.wantUserID, gotUserID)
			}
		})
	}
}

func TestAuth_RejectionBodyIsUniform(t *testing.T) {
	h := NewHandler(&service.Services{AuthService: &mockAuthService{}}, config.Server{}, logger.Nop())
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next must not be called")
	})

	for _, token := range []string{"", "garbage", "Bearer x"} {
		rr := executeAuth(h, token, next)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"code":401,"message":"unauthorized"}`, rr.Body.String())
	}
}

func TestRequesterID_MissingUser(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	id, ok := requesterID(rr, req)

	assert.False(t, ok)
	assert.Zero(t, id)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"code":500,"message":"internal server error"}`, rr.Body.String())
}

func TestRequesterID_FromContext(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(utils.WithUser(req.Context(), models.User{ID: 5}))

	id, ok := requesterID(rr, req)

	assert.True(t, ok)
	assert.Equal(t, int64(5), id)
}
