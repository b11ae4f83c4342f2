package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/my-gram/internal/config"
	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/service"
	"github.com/MKhiriev/my-gram/models"
	"github.com/stretchr/testify/require"
)

const (
	testToken       = "valid-token"
	testRequesterID = int64(7)
)

// newTestHandler creates a Handler with a nop logger and empty services.
func newTestHandler() *Handler {
	return NewHandler(&service.Services{}, config.Server{}, logger.Nop())
}

// authenticatedServices returns services whose AuthService accepts
// testToken as the user testRequesterID.
func authenticatedServices() *service.Services {
	return &service.Services{
		AuthService: &mockAuthService{
			authenticateFn: func(_ context.Context, tokenString string) (models.User, error) {
				if tokenString != testToken {
					return models.User{}, &service.Error{Kind: service.KindUnauthenticated, Message: service.MsgUnauthorized}
				}
				return models.User{ID: testRequesterID, Username: "requester"}, nil
			},
		},
	}
}

// serve runs one request through the full router and returns the recorder.
// The token header is set only when token is not empty.
func serve(t *testing.T, services *service.Services, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := NewHandler(services, config.Server{}, logger.Nop()).Init()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeMap decodes a JSON object response body.
func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}

func notFoundErr(message string) error {
	return &service.Error{Kind: service.KindNotFound, Message: message}
}

func forbiddenErr() error {
	return &service.Error{Kind: service.KindForbidden, Message: service.MsgForbidden}
}

func requireStatus(t *testing.T, rr *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rr.Code, "body: %s", rr.Body.String())
}
