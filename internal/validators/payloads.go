package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/MKhiriev/my-gram/models"
)

// Field names, equal to the JSON names reported in field errors.
const (
	FieldEmail           = "email"
	FieldFullName        = "full_name"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldProfileImageURL = "profile_image_url"
	FieldAge             = "age"
	FieldPhoneNumber     = "phone_number"
	FieldTitle           = "title"
	FieldCaption         = "caption"
	FieldPosterImageURL  = "poster_image_url"
	FieldComment         = "comment"
	FieldPhotoID         = "PhotoId"
	FieldName            = "name"
	FieldSocialMediaURL  = "social_media_url"
)

// PayloadValidator validates every request payload accepted by the API.
type PayloadValidator struct{}

// NewPayloadValidator returns the validator for request payloads.
func NewPayloadValidator() Validator {
	return &PayloadValidator{}
}

// Validate checks obj against the rules of its type. When fields are given,
// only errors reported for those JSON field names are kept.
//
// Rule violations are returned as *ValidationError; unsupported types as
// ErrUnsupportedType.
func (v *PayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error

	switch value := obj.(type) {
	case models.RegisterRequest:
		err = validateRegister(&value)
	case *models.RegisterRequest:
		err = validateRegister(value)

	case models.LoginRequest:
		err = validateLogin(&value)
	case *models.LoginRequest:
		err = validateLogin(value)

	case models.UserUpdate:
		err = validateUserUpdate(&value)
	case *models.UserUpdate:
		err = validateUserUpdate(value)

	case models.PhotoInput:
		err = validatePhotoInput(&value)
	case *models.PhotoInput:
		err = validatePhotoInput(value)

	case models.PhotoUpdate:
		err = validatePhotoUpdate(&value)
	case *models.PhotoUpdate:
		err = validatePhotoUpdate(value)

	case models.CommentInput:
		err = validateCommentInput(&value)
	case *models.CommentInput:
		err = validateCommentInput(value)

	case models.CommentUpdate:
		err = validateCommentUpdate(&value)
	case *models.CommentUpdate:
		err = validateCommentUpdate(value)

	case models.SocialMediaInput:
		err = validateSocialMediaInput(&value)
	case *models.SocialMediaInput:
		err = validateSocialMediaInput(value)

	case models.SocialMediaUpdate:
		err = validateSocialMediaUpdate(&value)
	case *models.SocialMediaUpdate:
		err = validateSocialMediaUpdate(value)

	default:
		return ErrUnsupportedType
	}

	return toValidationError(err, fields...)
}

func validateRegister(r *models.RegisterRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.FullName, validation.Required),
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.ProfileImageURL, validation.Required, is.URL),
		validation.Field(&r.Age, validation.Required, validation.Min(1)),
		validation.Field(&r.PhoneNumber, validation.Required),
	)
}

func validateLogin(r *models.LoginRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func validateUserUpdate(u *models.UserUpdate) error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Email, validation.NilOrNotEmpty, is.EmailFormat),
		validation.Field(&u.FullName, validation.NilOrNotEmpty),
		validation.Field(&u.Username, validation.NilOrNotEmpty),
		validation.Field(&u.ProfileImageURL, validation.NilOrNotEmpty, is.URL),
		validation.Field(&u.Age, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&u.PhoneNumber, validation.NilOrNotEmpty),
	)
}

func validatePhotoInput(p *models.PhotoInput) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.PosterImageURL, validation.Required, is.URL),
	)
}

func validatePhotoUpdate(p *models.PhotoUpdate) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.NilOrNotEmpty),
		validation.Field(&p.PosterImageURL, validation.NilOrNotEmpty, is.URL),
	)
}

func validateCommentInput(c *models.CommentInput) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Text, validation.Required),
		validation.Field(&c.PhotoID, validation.Required),
	)
}

func validateCommentUpdate(c *models.CommentUpdate) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Text, validation.NilOrNotEmpty),
	)
}

func validateSocialMediaInput(s *models.SocialMediaInput) error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.SocialMediaURL, validation.Required, is.URL),
	)
}

func validateSocialMediaUpdate(s *models.SocialMediaUpdate) error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.NilOrNotEmpty),
		validation.Field(&s.SocialMediaURL, validation.NilOrNotEmpty, is.URL),
	)
}

// toValidationError converts ozzo's per-field error map into a
// *ValidationError sorted by path. Internal rule failures are returned as is.
func toValidationError(err error, fields ...string) error {
	if err == nil {
		return nil
	}

	var internalErr validation.InternalError
	if errors.As(err, &internalErr) {
		return fmt.Errorf("validation rule failed: %w", internalErr.InternalError())
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("unexpected validation error: %w", err)
	}

	result := make([]models.FieldError, 0, len(fieldErrs))
	for path, fieldErr := range fieldErrs {
		if len(fields) > 0 && !slices.Contains(fields, path) {
			continue
		}
		result = append(result, models.FieldError{Path: path, Message: fieldErr.Error()})
	}
	if len(result) == 0 {
		return nil
	}

	slices.SortFunc(result, func(a, b models.FieldError) int {
		return strings.Compare(a.Path, b.Path)
	})

	return &ValidationError{Fields: result}
}
