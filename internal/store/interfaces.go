package store

import (
	"context"

	"github.com/MKhiriev/my-gram/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// PhotoRepository persists photos and builds the public feed.
type PhotoRepository interface {
	CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error)
	FindPhotoByID(ctx context.Context, photoID int64) (models.Photo, error)
	ListPhotos(ctx context.Context) ([]models.PhotoWithRelations, error)
	UpdatePhoto(ctx context.Context, photoID int64, update models.PhotoUpdate) (models.Photo, error)
	DeletePhoto(ctx context.Context, photoID int64) error
}

// CommentRepository persists comments.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	FindCommentByID(ctx context.Context, commentID int64) (models.Comment, error)
	ListCommentsByUser(ctx context.Context, userID int64) ([]models.CommentWithRelations, error)
	UpdateComment(ctx context.Context, commentID int64, update models.CommentUpdate) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

// SocialMediaRepository persists social media links.
type SocialMediaRepository interface {
	CreateSocialMedia(ctx context.Context, socialMedia models.SocialMedia) (models.SocialMedia, error)
	FindSocialMediaByID(ctx context.Context, socialMediaID int64) (models.SocialMedia, error)
	ListSocialMediasByUser(ctx context.Context, userID int64) ([]models.SocialMediaWithUser, error)
	UpdateSocialMedia(ctx context.Context, socialMediaID int64, update models.SocialMediaUpdate) (models.SocialMedia, error)
	DeleteSocialMedia(ctx context.Context, socialMediaID int64) error
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
