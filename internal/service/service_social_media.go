package service

import (
	"context"

	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/store"
	"github.com/MKhiriev/my-gram/internal/validators"
	"github.com/MKhiriev/my-gram/models"
)

type socialMediaService struct {
	socialMediaRepository store.SocialMediaRepository
	validator             validators.Validator
	logger                *logger.Logger
}

// NewSocialMediaService constructs a SocialMediaService.
func NewSocialMediaService(
	socialMediaRepository store.SocialMediaRepository,
	validator validators.Validator,
	logger *logger.Logger,
) SocialMediaService {
	return &socialMediaService{
		socialMediaRepository: socialMediaRepository,
		validator:             validator,
		logger:                logger,
	}
}

// Create validates input and stores a link owned by ownerID.
func (s *socialMediaService) Create(ctx context.Context, ownerID int64, input models.SocialMediaInput) (models.SocialMedia, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.SocialMedia{}, validationFailed(err)
	}

	socialMedia, err := s.socialMediaRepository.CreateSocialMedia(ctx, models.SocialMedia{
		Name:           input.Name,
		SocialMediaURL: input.SocialMediaURL,
		UserID:         ownerID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*socialMediaService.Create").Msg("error creating social media")
		return models.SocialMedia{}, storeError(err, MsgSocialMediaNotFound)
	}

	return socialMedia, nil
}

// List returns the requester's links with their owner.
func (s *socialMediaService) List(ctx context.Context, ownerID int64) ([]models.SocialMediaWithUser, error) {
	socialMedias, err := s.socialMediaRepository.ListSocialMediasByUser(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*socialMediaService.List").Msg("error listing social medias")
		return nil, internalError(err)
	}

	return socialMedias, nil
}

// Authorize checks that the link exists and belongs to requesterID.
func (s *socialMediaService) Authorize(ctx context.Context, requesterID, socialMediaID int64) error {
	_, err := guard(ctx, s.socialMediaRepository.FindSocialMediaByID, requesterID, socialMediaID, MsgSocialMediaNotFound)
	return err
}

// Update writes the non-nil fields of update after the ownership checks.
func (s *socialMediaService) Update(ctx context.Context, requesterID, socialMediaID int64, update models.SocialMediaUpdate) (models.SocialMedia, error) {
	if err := s.Authorize(ctx, requesterID, socialMediaID); err != nil {
		return models.SocialMedia{}, err
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.SocialMedia{}, validationFailed(err)
	}

	socialMedia, err := s.socialMediaRepository.UpdateSocialMedia(ctx, socialMediaID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*socialMediaService.Update").Msg("error updating social media")
		return models.SocialMedia{}, storeError(err, MsgSocialMediaNotFound)
	}

	return socialMedia, nil
}

// Delete removes the requester's link.
func (s *socialMediaService) Delete(ctx context.Context, requesterID, socialMediaID int64) (string, error) {
	if err := s.Authorize(ctx, requesterID, socialMediaID); err != nil {
		return "", err
	}

	if err := s.socialMediaRepository.DeleteSocialMedia(ctx, socialMediaID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*socialMediaService.Delete").Msg("error deleting social media")
		return "", storeError(err, MsgSocialMediaNotFound)
	}

	return MsgSocialMediaDeleted, nil
}
