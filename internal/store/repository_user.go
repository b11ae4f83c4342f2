package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles account creation, lookup and profile changes against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// database-assigned id and timestamps.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyUsed].
//   - value rejected by the schema → wrapped [ErrConstraintViolation].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := timestamp()
	user.CreatedAt, user.UpdatedAt = now, now

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch r.db.classify(err) {
		case UniqueViolation:
			return models.User{}, ErrEmailAlreadyUsed
		case ConstraintViolation:
			return models.User{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return user, nil
}

// FindUserByID returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildSelectByIDQuery(r.db.builder, models.User{}.TableName(), userColumns, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByID").Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

// FindUserByEmail returns the user registered with email or [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildSelectUserByEmailQuery(r.db.builder, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateUser writes the non-nil fields of update, bumps updated_at and
// returns the stored user.
//
// Error handling:
//   - no such user → [ErrUserNotFound].
//   - e-mail taken by another account → [ErrEmailAlreadyUsed].
//   - value rejected by the schema → wrapped [ErrConstraintViolation].
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, userID, update, timestamp())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.execAffectingOne(ctx, query, args, ErrUserNotFound); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return models.User{}, err
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("target_id", userID).Msg("error updating user")

		switch r.db.classify(err) {
		case UniqueViolation:
			return models.User{}, ErrEmailAlreadyUsed
		case ConstraintViolation:
			return models.User{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return r.FindUserByID(ctx, userID)
}

// DeleteUser removes the account together with everything it owns.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDQuery(r.db.builder, models.User{}.TableName(), userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.execAffectingOne(ctx, query, args, ErrUserNotFound); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return err
		}
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("target_id", userID).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.Username,
		&user.PasswordHash,
		&user.ProfileImageURL,
		&user.Age,
		&user.PhoneNumber,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}
