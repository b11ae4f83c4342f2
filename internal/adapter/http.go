package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/models"
	"github.com/go-resty/resty/v2"
)

// tokenHeader is the request header the server reads the access token from.
const tokenHeader = "token"

const defaultTimeout = 15 * time.Second

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs a resty-based [APIClient] for the server at
// address. The address may omit the scheme, "http" is assumed. A
// non-positive timeout falls back to 15 seconds.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPAPIClient(address string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// authedRequest attaches the stored token. An empty token is still sent so
// that the server answers 401.
func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	return h.request(ctx).SetHeader(tokenHeader, h.Token())
}

// send executes req and decodes a successful body into T.
func send[T any](h *httpAPIClient, req *resty.Request, method, path string) (T, error) {
	var result T

	resp, err := req.SetResult(&result).Execute(method, path)
	if err != nil {
		return result, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request rejected")
		return result, err
	}

	return result, nil
}

func (h *httpAPIClient) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	resp, err := send[models.UserResponse](h, h.request(ctx).SetBody(request), resty.MethodPost, "/users/register")
	return resp.User, err
}

func (h *httpAPIClient) Login(ctx context.Context, request models.LoginRequest) (string, error) {
	resp, err := send[models.LoginResponse](h, h.request(ctx).SetBody(request), resty.MethodPost, "/users/login")
	if err != nil {
		return "", err
	}

	h.SetToken(resp.Token)
	return resp.Token, nil
}

func (h *httpAPIClient) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	resp, err := send[models.UserResponse](h, h.authedRequest(ctx).SetBody(update), resty.MethodPut, fmt.Sprintf("/users/%d", userID))
	return resp.User, err
}

func (h *httpAPIClient) DeleteUser(ctx context.Context, userID int64) (string, error) {
	resp, err := send[models.MessageResponse](h, h.authedRequest(ctx), resty.MethodDelete, fmt.Sprintf("/users/%d", userID))
	return resp.Message, err
}

func (h *httpAPIClient) ListPhotos(ctx context.Context) ([]models.PhotoWithRelations, error) {
	resp, err := send[models.PhotosResponse](h, h.authedRequest(ctx), resty.MethodGet, "/photos")
	return resp.Photos, err
}

// CreatePhoto decodes the bare photo the server answers with.
func (h *httpAPIClient) CreatePhoto(ctx context.Context, input models.PhotoInput) (models.Photo, error) {
	return send[models.Photo](h, h.authedRequest(ctx).SetBody(input), resty.MethodPost, "/photos")
}

func (h *httpAPIClient) GetPhoto(ctx context.Context, photoID int64) (models.Photo, error) {
	return send[models.Photo](h, h.authedRequest(ctx), resty.MethodGet, fmt.Sprintf("/photos/%d", photoID))
}

func (h *httpAPIClient) UpdatePhoto(ctx context.Context, photoID int64, update models.PhotoUpdate) (models.Photo, error) {
	resp, err := send[models.PhotoResponse](h, h.authedRequest(ctx).SetBody(update), resty.MethodPut, fmt.Sprintf("/photos/%d", photoID))
	return resp.Photo, err
}

func (h *httpAPIClient) DeletePhoto(ctx context.Context, photoID int64) (string, error) {
	resp, err := send[models.MessageResponse](h, h.authedRequest(ctx), resty.MethodDelete, fmt.Sprintf("/photos/%d", photoID))
	return resp.Message, err
}

func (h *httpAPIClient) ListComments(ctx context.Context) ([]models.CommentWithRelations, error) {
	resp, err := send[models.CommentsResponse](h, h.authedRequest(ctx), resty.MethodGet, "/comments")
	return resp.Comments, err
}

func (h *httpAPIClient) CreateComment(ctx context.Context, input models.CommentInput) (models.Comment, error) {
	resp, err := send[models.CommentResponse](h, h.authedRequest(ctx).SetBody(input), resty.MethodPost, "/comments")
	return resp.Comment, err
}

func (h *httpAPIClient) UpdateComment(ctx context.Context, commentID int64, update models.CommentUpdate) (models.Comment, error) {
	resp, err := send[models.CommentResponse](h, h.authedRequest(ctx).SetBody(update), resty.MethodPut, fmt.Sprintf("/comments/%d", commentID))
	return resp.Comment, err
}

func (h *httpAPIClient) DeleteComment(ctx context.Context, commentID int64) (string, error) {
	resp, err := send[models.MessageResponse](h, h.authedRequest(ctx), resty.MethodDelete, fmt.Sprintf("/comments/%d", commentID))
	return resp.Message, err
}

func (h *httpAPIClient) ListSocialMedias(ctx context.Context) ([]models.SocialMediaWithUser, error) {
	resp, err := send[models.SocialMediasResponse](h, h.authedRequest(ctx), resty.MethodGet, "/socialmedias")
	return resp.SocialMedias, err
}

func (h *httpAPIClient) CreateSocialMedia(ctx context.Context, input models.SocialMediaInput) (models.SocialMedia, error) {
	resp, err := send[models.SocialMediaResponse](h, h.authedRequest(ctx).SetBody(input), resty.MethodPost, "/socialmedias")
	return resp.SocialMedia, err
}

func (h *httpAPIClient) UpdateSocialMedia(ctx context.Context, socialMediaID int64, update models.SocialMediaUpdate) (models.SocialMedia, error) {
	resp, err := send[models.SocialMediaResponse](h, h.authedRequest(ctx).SetBody(update), resty.MethodPut, fmt.Sprintf("/socialmedias/%d", socialMediaID))
	return resp.SocialMedia, err
}

func (h *httpAPIClient) DeleteSocialMedia(ctx context.Context, socialMediaID int64) (string, error) {
	resp, err := send[models.MessageResponse](h, h.authedRequest(ctx), resty.MethodDelete, fmt.Sprintf("/socialmedias/%d", socialMediaID))
	return resp.Message, err
}
