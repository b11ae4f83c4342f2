package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/models"
)

type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] over db.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment inserts comment. A PhotoID that does not reference an
// existing photo yields [ErrForeignKeyViolation].
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	now := timestamp()
	comment.CreatedAt, comment.UpdatedAt = now, now

	query, args, err := buildInsertCommentQuery(r.db.builder, comment)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("failed to create query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&comment.ID); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").
			Int64("photo_id", comment.PhotoID).
			Msg("error inserting comment")

		switch r.db.classify(err) {
		case ForeignKeyViolation:
			return models.Comment{}, ErrForeignKeyViolation
		case ConstraintViolation:
			return models.Comment{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return comment, nil
}

// FindCommentByID returns the comment with the given id or [ErrCommentNotFound].
func (r *commentRepository) FindCommentByID(ctx context.Context, commentID int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectByIDQuery(r.db.builder, models.Comment{}.TableName(), commentColumns, commentID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.FindCommentByID").Msg("failed to create query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrCommentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.FindCommentByID").Int64("comment_id", commentID).Msg("error selecting comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return comment, nil
}

// ListCommentsByUser returns the comments written by userID together with
// the commented photo and the author's contact data.
func (r *commentRepository) ListCommentsByUser(ctx context.Context, userID int64) ([]models.CommentWithRelations, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserCommentsQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsByUser").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsByUser").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.CommentWithRelations, 0)
	for rows.Next() {
		var item models.CommentWithRelations
		err = rows.Scan(
			&item.ID,
			&item.Text,
			&item.UserID,
			&item.PhotoID,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.Photo.ID,
			&item.Photo.Title,
			&item.Photo.Caption,
			&item.Photo.PosterImageURL,
			&item.User.ID,
			&item.User.Username,
			&item.User.ProfileImageURL,
			&item.User.PhoneNumber,
		)
		if err != nil {
			log.Err(err).Str("func", "*commentRepository.ListCommentsByUser").Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		comments = append(comments, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsByUser").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// UpdateComment writes the non-nil fields of update and returns the stored comment.
func (r *commentRepository) UpdateComment(ctx context.Context, commentID int64, update models.CommentUpdate) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCommentQuery(r.db.builder, commentID, update, timestamp())
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("failed to create query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.execAffectingOne(ctx, query, args, ErrCommentNotFound); err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			return models.Comment{}, err
		}
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Int64("comment_id", commentID).Msg("error updating comment")
		if r.db.classify(err) == ConstraintViolation {
			return models.Comment{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.FindCommentByID(ctx, commentID)
}

// DeleteComment removes a single comment.
func (r *commentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDQuery(r.db.builder, models.Comment{}.TableName(), commentID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.execAffectingOne(ctx, query, args, ErrCommentNotFound); err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			return err
		}
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Int64("comment_id", commentID).Msg("error deleting comment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func scanComment(row rowScanner) (models.Comment, error) {
	var comment models.Comment
	err := row.Scan(
		&comment.ID,
		&comment.Text,
		&comment.UserID,
		&comment.PhotoID,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	return comment, err
}
