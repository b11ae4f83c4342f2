package service

import (
	"context"

	"github.com/MKhiriev/my-gram/models"
)

// AuthService resolves access tokens to users.
type AuthService interface {
	// Authenticate returns the user the token was issued for.
	// Every failure is a [KindUnauthenticated] error.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// UserService manages accounts.
type UserService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)
	// Authorize runs the checks of Update and Delete without writing.
	Authorize(ctx context.Context, requesterID, userID int64) error
	Update(ctx context.Context, requesterID, userID int64, update models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, requesterID, userID int64) (string, error)
}

// PhotoService manages photos. List is the public feed of all users.
// Authorize is the existence and ownership check of Update and Delete;
// callers may run it before decoding a payload.
type PhotoService interface {
	Create(ctx context.Context, ownerID int64, input models.PhotoInput) (models.Photo, error)
	List(ctx context.Context) ([]models.PhotoWithRelations, error)
	Get(ctx context.Context, requesterID, photoID int64) (models.Photo, error)
	Authorize(ctx context.Context, requesterID, photoID int64) error
	Update(ctx context.Context, requesterID, photoID int64, update models.PhotoUpdate) (models.Photo, error)
	Delete(ctx context.Context, requesterID, photoID int64) (string, error)
}

// CommentService manages comments. List returns only the requester's comments.
type CommentService interface {
	Create(ctx context.Context, ownerID int64, input models.CommentInput) (models.Comment, error)
	List(ctx context.Context, ownerID int64) ([]models.CommentWithRelations, error)
	Authorize(ctx context.Context, requesterID, commentID int64) error
	Update(ctx context.Context, requesterID, commentID int64, update models.CommentUpdate) (models.Comment, error)
	Delete(ctx context.Context, requesterID, commentID int64) (string, error)
}

// SocialMediaService manages social media links. List returns only the
// requester's links.
type SocialMediaService interface {
	Create(ctx context.Context, ownerID int64, input models.SocialMediaInput) (models.SocialMedia, error)
	List(ctx context.Context, ownerID int64) ([]models.SocialMediaWithUser, error)
	Authorize(ctx context.Context, requesterID, socialMediaID int64) error
	Update(ctx context.Context, requesterID, socialMediaID int64, update models.SocialMediaUpdate) (models.SocialMedia, error)
	Delete(ctx context.Context, requesterID, socialMediaID int64) (string, error)
}
