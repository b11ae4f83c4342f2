package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/store"
	"github.com/MKhiriev/my-gram/internal/validators"
	"github.com/MKhiriev/my-gram/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	photoRepository   store.PhotoRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewCommentService constructs a CommentService. The photo repository is
// used to check that a commented photo exists.
func NewCommentService(
	commentRepository store.CommentRepository,
	photoRepository store.PhotoRepository,
	validator validators.Validator,
	logger *logger.Logger,
) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		photoRepository:   photoRepository,
		validator:         validator,
		logger:            logger,
	}
}

// Create comments on any user's photo. The photo must exist.
func (s *commentService) Create(ctx context.Context, ownerID int64, input models.CommentInput) (models.Comment, error) {
	log := logger.FromContext(ctx)

	_, err := s.photoRepository.FindPhotoByID(ctx, input.PhotoID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Comment{}, notFound(MsgPhotoNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*commentService.Create").Msg("error loading photo")
		return models.Comment{}, internalError(err)
	}

	if err = s.validator.Validate(ctx, input); err != nil {
		return models.Comment{}, validationFailed(err)
	}

	comment, err := s.commentRepository.CreateComment(ctx, models.Comment{
		Text:    input.Text,
		UserID:  ownerID,
		PhotoID: input.PhotoID,
	})
	// the photo was deleted after the check
	if errors.Is(err, store.ErrForeignKeyViolation) {
		return models.Comment{}, notFound(MsgPhotoNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*commentService.Create").Msg("error creating comment")
		return models.Comment{}, storeError(err, MsgCommentNotFound)
	}

	return comment, nil
}

// List returns the requester's comments with the commented photos.
func (s *commentService) List(ctx context.Context, ownerID int64) ([]models.CommentWithRelations, error) {
	comments, err := s.commentRepository.ListCommentsByUser(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentService.List").Msg("error listing comments")
		return nil, internalError(err)
	}

	return comments, nil
}

// Authorize checks that the comment exists and was written by requesterID.
func (s *commentService) Authorize(ctx context.Context, requesterID, commentID int64) error {
	_, err := guard(ctx, s.commentRepository.FindCommentByID, requesterID, commentID, MsgCommentNotFound)
	return err
}

// Update changes the text of the requester's comment.
func (s *commentService) Update(ctx context.Context, requesterID, commentID int64, update models.CommentUpdate) (models.Comment, error) {
	if err := s.Authorize(ctx, requesterID, commentID); err != nil {
		return models.Comment{}, err
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Comment{}, validationFailed(err)
	}

	comment, err := s.commentRepository.UpdateComment(ctx, commentID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentService.Update").Msg("error updating comment")
		return models.Comment{}, storeError(err, MsgCommentNotFound)
	}

	return comment, nil
}

// Delete removes the requester's comment.
func (s *commentService) Delete(ctx context.Context, requesterID, commentID int64) (string, error) {
	if err := s.Authorize(ctx, requesterID, commentID); err != nil {
		return "", err
	}

	if err := s.commentRepository.DeleteComment(ctx, commentID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentService.Delete").Msg("error deleting comment")
		return "", storeError(err, MsgCommentNotFound)
	}

	return MsgCommentDeleted, nil
}
