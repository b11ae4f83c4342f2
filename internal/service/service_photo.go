package service

import (
	"context"

	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/store"
	"github.com/MKhiriev/my-gram/internal/validators"
	"github.com/MKhiriev/my-gram/models"
)

type photoService struct {
	photoRepository store.PhotoRepository
	validator       validators.Validator
	logger          *logger.Logger
}

// NewPhotoService constructs a PhotoService.
func NewPhotoService(photoRepository store.PhotoRepository, validator validators.Validator, logger *logger.Logger) PhotoService {
	return &photoService{
		photoRepository: photoRepository,
		validator:       validator,
		logger:          logger,
	}
}

// Create validates input and stores a photo owned by ownerID.
func (s *photoService) Create(ctx context.Context, ownerID int64, input models.PhotoInput) (models.Photo, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Photo{}, validationFailed(err)
	}

	photo, err := s.photoRepository.CreatePhoto(ctx, models.Photo{
		Title:          input.Title,
		Caption:        input.Caption,
		PosterImageURL: input.PosterImageURL,
		UserID:         ownerID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*photoService.Create").Msg("error creating photo")
		return models.Photo{}, storeError(err, MsgPhotoNotFound)
	}

	return photo, nil
}

// List returns the feed of every user's photos.
func (s *photoService) List(ctx context.Context) ([]models.PhotoWithRelations, error) {
	photos, err := s.photoRepository.ListPhotos(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*photoService.List").Msg("error listing photos")
		return nil, internalError(err)
	}

	return photos, nil
}

// Get returns one of the requester's own photos. A foreign photo is
// Forbidden, the same as for Update and Delete.
func (s *photoService) Get(ctx context.Context, requesterID, photoID int64) (models.Photo, error) {
	return guard(ctx, s.photoRepository.FindPhotoByID, requesterID, photoID, MsgPhotoNotFound)
}

// Authorize checks that the photo exists and belongs to requesterID.
func (s *photoService) Authorize(ctx context.Context, requesterID, photoID int64) error {
	_, err := guard(ctx, s.photoRepository.FindPhotoByID, requesterID, photoID, MsgPhotoNotFound)
	return err
}

// Update writes the non-nil fields of update after the ownership checks.
func (s *photoService) Update(ctx context.Context, requesterID, photoID int64, update models.PhotoUpdate) (models.Photo, error) {
	if err := s.Authorize(ctx, requesterID, photoID); err != nil {
		return models.Photo{}, err
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Photo{}, validationFailed(err)
	}

	photo, err := s.photoRepository.UpdatePhoto(ctx, photoID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*photoService.Update").Msg("error updating photo")
		return models.Photo{}, storeError(err, MsgPhotoNotFound)
	}

	return photo, nil
}

// Delete removes the photo together with its comments.
func (s *photoService) Delete(ctx context.Context, requesterID, photoID int64) (string, error) {
	if err := s.Authorize(ctx, requesterID, photoID); err != nil {
		return "", err
	}

	if err := s.photoRepository.DeletePhoto(ctx, photoID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*photoService.Delete").Msg("error deleting photo")
		return "", storeError(err, MsgPhotoNotFound)
	}

	return MsgPhotoDeleted, nil
}
