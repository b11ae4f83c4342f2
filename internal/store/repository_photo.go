package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/models"
)

type photoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPhotoRepository constructs a [PhotoRepository] over db.
func NewPhotoRepository(db *DB, logger *logger.Logger) PhotoRepository {
	logger.Debug().Msg("creating photo repository")
	return &photoRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePhoto inserts photo and returns it with id and timestamps set.
func (r *photoRepository) CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error) {
	log := logger.FromContext(ctx)

	now := timestamp()
	photo.CreatedAt, photo.UpdatedAt = now, now

	query, args, err := buildInsertPhotoQuery(r.db.builder, photo)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.CreatePhoto").Msg("failed to create query")
		return models.Photo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&photo.ID); err != nil {
		log.Err(err).Str("func", "*photoRepository.CreatePhoto").Msg("error inserting photo")

		switch r.db.classify(err) {
		case ForeignKeyViolation:
			return models.Photo{}, ErrForeignKeyViolation
		case ConstraintViolation:
			return models.Photo{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			return models.Photo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return photo, nil
}

// FindPhotoByID returns the photo with the given id or [ErrPhotoNotFound].
func (r *photoRepository) FindPhotoByID(ctx context.Context, photoID int64) (models.Photo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectByIDQuery(r.db.builder, models.Photo{}.TableName(), photoColumns, photoID)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.FindPhotoByID").Msg("failed to create query")
		return models.Photo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	photo, err := scanPhoto(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Photo{}, ErrPhotoNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.FindPhotoByID").Int64("photo_id", photoID).Msg("error selecting photo")
		return models.Photo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return photo, nil
}

// ListPhotos returns the feed of all photos of all users. Each photo carries
// its owner and its comments; Comments is never nil.
//
// The feed is assembled from two queries: photos joined with owners, then the
// comments of those photos joined with their authors.
func (r *photoRepository) ListPhotos(ctx context.Context) ([]models.PhotoWithRelations, error) {
	log := logger.FromContext(ctx)

	photos, err := r.listFeedPhotos(ctx)
	if err != nil {
		return nil, err
	}
	if len(photos) == 0 {
		return photos, nil
	}

	index := make(map[int64]int, len(photos))
	ids := make([]int64, 0, len(photos))
	for i, photo := range photos {
		index[photo.ID] = i
		ids = append(ids, photo.ID)
	}

	query, args, err := buildSelectFeedCommentsQuery(r.db.builder, ids)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.ListPhotos").Msg("failed to create comments query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.ListPhotos").Msg("failed to execute comments query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			photoID int64
			comment models.FeedComment
		)
		if err = rows.Scan(&photoID, &comment.Text, &comment.User.Username); err != nil {
			log.Err(err).Str("func", "*photoRepository.ListPhotos").Msg("failed to scan feed comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if i, ok := index[photoID]; ok {
			photos[i].Comments = append(photos[i].Comments, comment)
		}
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*photoRepository.ListPhotos").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return photos, nil
}

func (r *photoRepository) listFeedPhotos(ctx context.Context) ([]models.PhotoWithRelations, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFeedPhotosQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.listFeedPhotos").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.listFeedPhotos").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	photos := make([]models.PhotoWithRelations, 0)
	for rows.Next() {
		var item models.PhotoWithRelations
		err = rows.Scan(
			&item.ID,
			&item.Title,
			&item.Caption,
			&item.PosterImageURL,
			&item.UserID,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.User.ID,
			&item.User.Username,
			&item.User.ProfileImageURL,
		)
		if err != nil {
			log.Err(err).Str("func", "*photoRepository.listFeedPhotos").Msg("failed to scan photo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		item.Comments = make([]models.FeedComment, 0)

		photos = append(photos, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*photoRepository.listFeedPhotos").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return photos, nil
}

// UpdatePhoto writes the non-nil fields of update and returns the stored photo.
func (r *photoRepository) UpdatePhoto(ctx context.Context, photoID int64, update models.PhotoUpdate) (models.Photo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePhotoQuery(r.db.builder, photoID, update, timestamp())
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.UpdatePhoto").Msg("failed to create query")
		return models.Photo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.execAffectingOne(ctx, query, args, ErrPhotoNotFound); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			return models.Photo{}, err
		}
		log.Err(err).Str("func", "*photoRepository.UpdatePhoto").Int64("photo_id", photoID).Msg("error updating photo")
		if r.db.classify(err) == ConstraintViolation {
			return models.Photo{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
		return models.Photo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.FindPhotoByID(ctx, photoID)
}

// DeletePhoto removes the photo and its comments.
func (r *photoRepository) DeletePhoto(ctx context.Context, photoID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDQuery(r.db.builder, models.Photo{}.TableName(), photoID)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.DeletePhoto").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.execAffectingOne(ctx, query, args, ErrPhotoNotFound); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			return err
		}
		log.Err(err).Str("func", "*photoRepository.DeletePhoto").Int64("photo_id", photoID).Msg("error deleting photo")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func scanPhoto(row rowScanner) (models.Photo, error) {
	var photo models.Photo
	err := row.Scan(
		&photo.ID,
		&photo.Title,
		&photo.Caption,
		&photo.PosterImageURL,
		&photo.UserID,
		&photo.CreatedAt,
		&photo.UpdatedAt,
	)
	return photo, err
}
