package sqlite

import (
	"context"
	"database/sql"
	"strconv"

	"roster/internal/errors"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so the helpers below can run
// inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HandleDatabaseError wraps a driver error. Context errors stay in the
// chain so callers can tell a timeout from a failure.
func HandleDatabaseError(operation string, err error) error {
	return errors.NewDatabaseError(operation, err)
}

func notFound(entity string, id int64) error {
	return errors.NewNotFoundError(entity, strconv.FormatInt(id, 10))
}

// ValidateRowsAffected reports entity id as missing when result touched no rows
func ValidateRowsAffected(result sql.Result, entity string, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return HandleDatabaseError("count updated "+entity, err)
	}
	if rows == 0 {
		return notFound(entity, id)
	}
	return nil
}

// ExecuteInsert runs an INSERT and returns the generated row identifier
func ExecuteInsert(ctx context.Context, db DBTX, operation, query string, args ...any) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleDatabaseError(operation, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleDatabaseError(operation, err)
	}
	return id, nil
}

// ExecuteUpdate runs an UPDATE on entity id, which must exist
func ExecuteUpdate(ctx context.Context, db DBTX, entity string, id int64, query string, args ...any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return HandleDatabaseError("update "+entity, err)
	}
	return ValidateRowsAffected(result, entity, id)
}

// QueryMultiple loads every row query returns
func QueryMultiple[T any](ctx context.Context, db DBTX, entity, query string, scan func(Rows) ([]*T, error), args ...any) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError("list "+entity, err)
	}
	defer rows.Close()

	results, err := scan(rows)
	if err != nil {
		return nil, HandleDatabaseError("list "+entity, err)
	}
	return results, nil
}

// WithTx runs fn inside a transaction, committing only when fn succeeds.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit transaction", err)
	}
	return nil
}
