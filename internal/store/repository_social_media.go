package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/models"
)

type socialMediaRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSocialMediaRepository constructs a [SocialMediaRepository] over db.
func NewSocialMediaRepository(db *DB, logger *logger.Logger) SocialMediaRepository {
	logger.Debug().Msg("creating social media repository")
	return &socialMediaRepository{
		db:     db,
		logger: logger,
	}
}

func (r *socialMediaRepository) CreateSocialMedia(ctx context.Context, socialMedia models.SocialMedia) (models.SocialMedia, error) {
	log := logger.FromContext(ctx)

	now := timestamp()
	socialMedia.CreatedAt, socialMedia.UpdatedAt = now, now

	query, args, err := buildInsertSocialMediaQuery(r.db.builder, socialMedia)
	if err != nil {
		log.Err(err).Str("func", "*socialMediaRepository.CreateSocialMedia").Msg("failed to create query")
		return models.SocialMedia{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&socialMedia.ID); err != nil {
		log.Err(err).Str("func", "*socialMediaRepository.CreateSocialMedia").Msg("error inserting social media")

		switch r.db.classify(err) {
		case ForeignKeyViolation:
			return models.SocialMedia{}, ErrForeignKeyViolation
		case ConstraintViolation:
			return models.SocialMedia{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			return models.SocialMedia{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return socialMedia, nil
}

func (r *socialMediaRepository) FindSocialMediaByID(ctx context.Context, socialMediaID int64) (models.SocialMedia, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectByIDQuery(r.db.builder, models.SocialMedia{}.TableName(), socialMediaColumns, socialMediaID)
	if err != nil {
		log.Err(err).Str("func", "*socialMediaRepository.FindSocialMediaByID").Msg("failed to create query")
		return models.SocialMedia{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var socialMedia models.SocialMedia
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&socialMedia.ID,
		&socialMedia.Name,
		&socialMedia.SocialMediaURL,
		&socialMedia.UserID,
		&socialMedia.CreatedAt,
		&socialMedia.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SocialMedia{}, ErrSocialMediaNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*socialMediaRepository.FindSocialMediaByID").
			Int64("social_media_id", socialMediaID).
			Msg("error selecting social media")
		return models.SocialMedia{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return socialMedia, nil
}

func (r *socialMediaRepository) ListSocialMediasByUser(ctx context.Context, userID int64) ([]models.SocialMediaWithUser, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserSocialMediasQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*socialMediaRepository.ListSocialMediasByUser").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*socialMediaRepository.ListSocialMediasByUser").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	socialMedias := make([]models.SocialMediaWithUser, 0)
	for rows.Next() {
		var item models.SocialMediaWithUser
		err = rows.Scan(
			&item.ID,
			&item.Name,
			&item.SocialMediaURL,
			&item.UserID,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.User.ID,
			&item.User.Username,
			&item.User.ProfileImageURL,
		)
		if err != nil {
			log.Err(err).Str("func", "*socialMediaRepository.ListSocialMediasByUser").Msg("failed to scan social media row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		socialMedias = append(socialMedias, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*socialMediaRepository.ListSocialMediasByUser").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return socialMedias, nil
}

func (r *socialMediaRepository) UpdateSocialMedia(ctx context.Context, socialMediaID int64, update models.SocialMediaUpdate) (models.SocialMedia, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSocialMediaQuery(r.db.builder, socialMediaID, update, timestamp())
	if err != nil {
		log.Err(err).Str("func", "*socialMediaRepository.UpdateSocialMedia").Msg("failed to create query")
		return models.SocialMedia{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.execAffectingOne(ctx, query, args, ErrSocialMediaNotFound); err != nil {
		if errors.Is(err, ErrSocialMediaNotFound) {
			return models.SocialMedia{}, err
		}
		log.Err(err).Str("func", "*socialMediaRepository.UpdateSocialMedia").
			Int64("social_media_id", socialMediaID).
			Msg("error updating social media")
		if r.db.classify(err) == ConstraintViolation {
			return models.SocialMedia{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
		return models.SocialMedia{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.FindSocialMediaByID(ctx, socialMediaID)
}

func (r *socialMediaRepository) DeleteSocialMedia(ctx context.Context, socialMediaID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDQuery(r.db.builder, models.SocialMedia{}.TableName(), socialMediaID)
	if err != nil {
		log.Err(err).Str("func", "*socialMediaRepository.DeleteSocialMedia").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.execAffectingOne(ctx, query, args, ErrSocialMediaNotFound); err != nil {
		if errors.Is(err, ErrSocialMediaNotFound) {
			return err
		}
		log.Err(err).Str("func", "*socialMediaRepository.DeleteSocialMedia").
			Int64("social_media_id", socialMediaID).
			Msg("error deleting social media")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
