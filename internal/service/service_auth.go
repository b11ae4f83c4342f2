package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/my-gram/internal/crypto"
	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/store"
	"github.com/MKhiriev/my-gram/models"
)

// authService is the concrete implementation of AuthService.
// It verifies a token with the TokenManager and then makes sure the user the
// token names still exists.
type authService struct {
	userRepository store.UserRepository
	tokens         crypto.TokenManager
	logger         *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokens crypto.TokenManager, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		logger:         logger,
	}
}

// Authenticate walks the gate: missing token, failed verification and a
// vanished user are all rejected the same way.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return models.User{}, unauthenticated(crypto.ErrInvalidToken)
	}

	token, err := a.tokens.Verify(tokenString)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.Authenticate").Msg("token verification failed")
		return models.User{}, unauthenticated(err)
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID())
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "*authService.Authenticate").Int64("user_id", token.UserID()).Msg("token of deleted user")
		return models.User{}, unauthenticated(err)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("error loading token owner")
		return models.User{}, internalError(err)
	}

	user.PasswordHash = ""
	return user, nil
}
