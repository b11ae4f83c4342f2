// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the my-gram REST API.
//
// The primary abstraction is [APIClient]; [NewHTTPAPIClient] returns its
// resty-based implementation. Error responses are decoded from the
// {"code", "message"} envelope into an [*APIError] that wraps one of the
// sentinel errors of this package, so callers can use [errors.Is] (e.g.
// [ErrForbidden] for 403, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/my-gram/models"
)

// APIClient talks to a my-gram server. Methods of protected routes send the
// token stored with SetToken; Login stores the issued token automatically.
type APIClient interface {
	// SetToken stores the access token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored access token, or an empty string.
	Token() string

	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login authenticates the user and stores the issued token.
	Login(ctx context.Context, request models.LoginRequest) (string, error)

	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) (string, error)

	ListPhotos(ctx context.Context) ([]models.PhotoWithRelations, error)
	CreatePhoto(ctx context.Context, input models.PhotoInput) (models.Photo, error)
	GetPhoto(ctx context.Context, photoID int64) (models.Photo, error)
	UpdatePhoto(ctx context.Context, photoID int64, update models.PhotoUpdate) (models.Photo, error)
	DeletePhoto(ctx context.Context, photoID int64) (string, error)

	ListComments(ctx context.Context) ([]models.CommentWithRelations, error)
	CreateComment(ctx context.Context, input models.CommentInput) (models.Comment, error)
	UpdateComment(ctx context.Context, commentID int64, update models.CommentUpdate) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) (string, error)

	ListSocialMedias(ctx context.Context) ([]models.SocialMediaWithUser, error)
	CreateSocialMedia(ctx context.Context, input models.SocialMediaInput) (models.SocialMedia, error)
	UpdateSocialMedia(ctx context.Context, socialMediaID int64, update models.SocialMediaUpdate) (models.SocialMedia, error)
	DeleteSocialMedia(ctx context.Context, socialMediaID int64) (string, error)
}
