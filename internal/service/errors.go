package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/my-gram/internal/validators"
	"github.com/MKhiriev/my-gram/models"
)

// Kind classifies every error a service returns. The transport layer maps
// each kind onto exactly one status code.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindInvalidInput
	KindConflict
)

// Kinds returns every defined kind.
func Kinds() []Kind {
	return []Kind{
		KindInternal,
		KindUnauthenticated,
		KindForbidden,
		KindNotFound,
		KindInvalidInput,
		KindConflict,
	}
}

func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindInvalidInput:
		return "invalid input"
	case KindConflict:
		return "conflict"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Messages shown to API clients.
const (
	MsgInternal            = "internal server error"
	MsgUnauthorized        = "unauthorized"
	MsgForbidden           = "forbidden"
	MsgValidationFailed    = "validation failed"
	MsgInvalidValue        = "invalid value"
	MsgUserNotFound        = "user not found"
	MsgPhotoNotFound       = "photo not found"
	MsgCommentNotFound     = "comment not found"
	MsgSocialMediaNotFound = "social media not found"
	MsgEmailUsed           = "email is used"
	MsgWrongPassword       = "user password is wrong"

	MsgUserDeleted        = "Your account has been successfully deleted"
	MsgPhotoDeleted       = "Your photo has been successfully deleted"
	MsgCommentDeleted     = "Your comment has been successfully deleted"
	MsgSocialMediaDeleted = "Your social media has been successfully deleted"
)

// Error is the error type returned by every service method.
//
// Message is safe to show to clients. Fields is set only for
// [KindInvalidInput] errors caused by payload validation. Err keeps the
// underlying cause for logging and is never exposed.
type Error struct {
	Kind    Kind
	Message string
	Fields  []models.FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err. Errors that are not (and do not wrap) an
// *Error are [KindInternal].
func KindOf(err error) Kind {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Kind
	}
	return KindInternal
}

func internalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: MsgInternal, Err: err}
}

func unauthenticated(err error) *Error {
	return &Error{Kind: KindUnauthenticated, Message: MsgUnauthorized, Err: err}
}

func forbidden() *Error {
	return &Error{Kind: KindForbidden, Message: MsgForbidden}
}

func notFound(message string, err error) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: err}
}

func conflict(message string, err error) *Error {
	return &Error{Kind: KindConflict, Message: message, Err: err}
}

func invalidInput(message string, err error) *Error {
	return &Error{Kind: KindInvalidInput, Message: message, Err: err}
}

// validationFailed converts a validator error into an [KindInvalidInput]
// error carrying the field list. Anything else is internal.
func validationFailed(err error) *Error {
	fields, ok := validators.FieldErrors(err)
	if !ok {
		return internalError(err)
	}
	return &Error{Kind: KindInvalidInput, Message: MsgValidationFailed, Fields: fields, Err: err}
}
