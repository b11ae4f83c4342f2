package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps a database/sql connection pool together with the pieces every
// repository needs: a squirrel statement builder using the driver's
// placeholder format, the driver-specific error classifier and a logger.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if dialect == migrations.DialectPostgres {
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return &DB{
		DB:                 conn,
		builder:            builder,
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// execAffectingOne runs a DML statement and reports notFound when no row was
// touched.
func (db *DB) execAffectingOne(ctx context.Context, query string, args []any, notFound error) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
