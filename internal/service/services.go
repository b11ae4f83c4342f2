package service

import (
	"github.com/MKhiriev/my-gram/internal/config"
	"github.com/MKhiriev/my-gram/internal/crypto"
	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/store"
	"github.com/MKhiriev/my-gram/internal/validators"
)

// Services groups every service the transport layer depends on.
type Services struct {
	AuthService        AuthService
	UserService        UserService
	PhotoService       PhotoService
	CommentService     CommentService
	SocialMediaService SocialMediaService
}

// NewServices builds all services from the storages and the application
// settings.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.PasswordHashCost)
	tokens := crypto.NewJWTTokenManager(cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration)
	validator := validators.NewPayloadValidator()

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, tokens, logger),
		UserService:        NewUserService(storages.UserRepository, hasher, tokens, validator, logger),
		PhotoService:       NewPhotoService(storages.PhotoRepository, validator, logger),
		CommentService:     NewCommentService(storages.CommentRepository, storages.PhotoRepository, validator, logger),
		SocialMediaService: NewSocialMediaService(storages.SocialMediaRepository, validator, logger),
	}
}
