package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is wrapped by every entity-specific "not found" error.
	ErrNotFound = errors.New("record not found")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = fmt.Errorf("user: %w", ErrNotFound)

	// ErrPhotoNotFound is returned when no photo matches the lookup.
	ErrPhotoNotFound = fmt.Errorf("photo: %w", ErrNotFound)

	// ErrCommentNotFound is returned when no comment matches the lookup.
	ErrCommentNotFound = fmt.Errorf("comment: %w", ErrNotFound)

	// ErrSocialMediaNotFound is returned when no social media link matches
	// the lookup.
	ErrSocialMediaNotFound = fmt.Errorf("social media: %w", ErrNotFound)

	// ErrEmailAlreadyUsed is returned when an insert or update would give two
	// accounts the same e-mail.
	ErrEmailAlreadyUsed = errors.New("email already used")

	// ErrForeignKeyViolation is returned when a record references a row that
	// does not exist (anymore).
	ErrForeignKeyViolation = errors.New("referenced record does not exist")

	// ErrConstraintViolation is returned when the schema rejects a value:
	// NOT NULL, CHECK and other integrity failures, or data exceptions such
	// as a string longer than its column.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnsupportedDriver is returned when the configured driver has no
	// connector.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
