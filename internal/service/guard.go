package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/store"
)

// owned is implemented by every resource with a single owner.
type owned interface {
	OwnerID() int64
}

// guard loads the resource with the given id and checks that requesterID
// owns it. Existence is checked before ownership: a missing resource is
// NotFound for everyone, a foreign one is Forbidden.
func guard[T owned](
	ctx context.Context,
	find func(context.Context, int64) (T, error),
	requesterID, id int64,
	notFoundMessage string,
) (T, error) {
	var zero T

	resource, err := find(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return zero, notFound(notFoundMessage, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "service.guard").Int64("resource_id", id).Msg("error loading resource")
		return zero, internalError(err)
	}

	if resource.OwnerID() != requesterID {
		logger.FromContext(ctx).Warn().
			Str("func", "service.guard").
			Int64("resource_id", id).
			Int64("owner_id", resource.OwnerID()).
			Msg("access to foreign resource denied")
		return zero, forbidden()
	}

	return resource, nil
}

// storeError maps a repository error of a write. Values rejected by the
// database schema are InvalidInput.
func storeError(err error, notFoundMessage string) *Error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return notFound(notFoundMessage, err)
	case errors.Is(err, store.ErrConstraintViolation):
		return invalidInput(MsgInvalidValue, err)
	default:
		return internalError(err)
	}
}
