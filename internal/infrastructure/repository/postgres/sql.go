package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/leaguerly/internal/usecase"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// mapWriteError translates constraint violations into use case errors so
// handlers can answer 409/400 instead of 500.
func mapWriteError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, usecase.ErrConflict, pqErr.Constraint)
		case pqForeignKeyViolation, pqCheckViolation:
			return fmt.Errorf("%s: %w: %s", op, usecase.ErrInvalidInput, pqErr.Constraint)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "bind message supplies") && strings.Contains(msg, "requires")
}

func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "unnamed prepared statement does not exist") ||
		(strings.Contains(msg, "prepared statement") && strings.Contains(msg, "26000"))
}

// isRetryableStatementError reports prepared statement errors raised by
// transaction-pooling proxies; the same query succeeds on a fresh attempt.
func isRetryableStatementError(err error) bool {
	return isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err)
}

func selectRows(ctx context.Context, db sqlx.QueryerContext, dest any, query string, args ...any) error {
	err := sqlx.SelectContext(ctx, db, dest, query, args...)
	if isRetryableStatementError(err) {
		err = sqlx.SelectContext(ctx, db, dest, query, args...)
	}
	return err
}

func getRow(ctx context.Context, db sqlx.QueryerContext, dest any, query string, args ...any) error {
	err := sqlx.GetContext(ctx, db, dest, query, args...)
	if isRetryableStatementError(err) {
		err = sqlx.GetContext(ctx, db, dest, query, args...)
	}
	return err
}

// execAffectingOne runs a write that must touch exactly one live row.
func execAffectingOne(ctx context.Context, db sqlx.ExecerContext, op, query string, args ...any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError(op, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected %s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: not found", op)
	}
	return nil
}

func nullInt64(value *int64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *value, Valid: true}
}

func nullInt64Ptr(value sql.NullInt64) *int64 {
	if !value.Valid {
		return nil
	}
	v := value.Int64
	return &v
}
