package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/my-gram/internal/crypto"
	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/store"
	"github.com/MKhiriev/my-gram/internal/validators"
	"github.com/MKhiriev/my-gram/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	tokens         crypto.TokenManager
	validator      validators.Validator
	logger         *logger.Logger
}

// NewUserService constructs a UserService.
func NewUserService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokens crypto.TokenManager,
	validator validators.Validator,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		validator:      validator,
		logger:         logger,
	}
}

// Register creates an account. A taken email is a Conflict even when the
// rest of the payload is invalid. The returned user never carries the
// password hash.
func (s *userService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := s.userRepository.FindUserByEmail(ctx, request.Email)
	switch {
	case err == nil:
		return models.User{}, conflict(MsgEmailUsed, store.ErrEmailAlreadyUsed)
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*userService.Register").Msg("error checking email")
		return models.User{}, internalError(err)
	}

	if err = s.validator.Validate(ctx, request); err != nil {
		return models.User{}, validationFailed(err)
	}

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("error hashing password")
		return models.User{}, internalError(err)
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		Email:           request.Email,
		FullName:        request.FullName,
		Username:        request.Username,
		PasswordHash:    hash,
		ProfileImageURL: request.ProfileImageURL,
		Age:             request.Age,
		PhoneNumber:     request.PhoneNumber,
	})
	if errors.Is(err, store.ErrEmailAlreadyUsed) {
		return models.User{}, conflict(MsgEmailUsed, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("user creation ended with error")
		return models.User{}, storeError(err, MsgUserNotFound)
	}

	log.Info().Str("func", "*userService.Register").Int64("new_user_id", user.ID).Msg("user registered")

	user.PasswordHash = ""
	return user, nil
}

// Login checks the credentials and issues a token carrying only the user id.
func (s *userService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Token{}, validationFailed(err)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Token{}, notFound(MsgUserNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.Login").Msg("error finding user")
		return models.Token{}, internalError(err)
	}

	err = s.hasher.Compare(user.PasswordHash, request.Password)
	if errors.Is(err, crypto.ErrPasswordMismatch) {
		return models.Token{}, invalidInput(MsgWrongPassword, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.Login").Msg("error comparing password")
		return models.Token{}, internalError(err)
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		log.Err(err).Str("func", "*userService.Login").Msg("error signing token")
		return models.Token{}, internalError(err)
	}

	return token, nil
}

// Authorize checks that userID is the requester's own existing account.
// Acting on another account is Forbidden even when that account does not
// exist.
func (s *userService) Authorize(ctx context.Context, requesterID, userID int64) error {
	_, err := guard(ctx, s.selfFinder(requesterID), requesterID, userID, MsgUserNotFound)
	return err
}

// Update changes the requester's own profile.
func (s *userService) Update(ctx context.Context, requesterID, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.Authorize(ctx, requesterID, userID); err != nil {
		return models.User{}, err
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, validationFailed(err)
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, update)
	if errors.Is(err, store.ErrEmailAlreadyUsed) {
		return models.User{}, conflict(MsgEmailUsed, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.Update").Msg("error updating user")
		return models.User{}, storeError(err, MsgUserNotFound)
	}

	user.PasswordHash = ""
	return user, nil
}

// Delete removes the requester's own account with everything it owns.
func (s *userService) Delete(ctx context.Context, requesterID, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	if err := s.Authorize(ctx, requesterID, userID); err != nil {
		return "", err
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("func", "*userService.Delete").Msg("error deleting user")
		return "", storeError(err, MsgUserNotFound)
	}

	log.Info().Str("func", "*userService.Delete").Msg("user deleted")
	return MsgUserDeleted, nil
}

// selfFinder checks the self match before touching storage, so a foreign
// target id is Forbidden without revealing whether it exists.
func (s *userService) selfFinder(requesterID int64) func(context.Context, int64) (models.User, error) {
	return func(ctx context.Context, userID int64) (models.User, error) {
		if userID != requesterID {
			return models.User{ID: userID}, nil
		}
		return s.userRepository.FindUserByID(ctx, userID)
	}
}
