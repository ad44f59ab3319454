package errors

// Postgres helpers: SQLSTATE to ErrorCode mapping, field extraction and retry rules

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes we branch on
const (
	pgErrUniqueViolation           = "23505"
	pgErrForeignKeyViolation       = "23503"
	pgErrNotNullViolation          = "23502"
	pgErrCheckViolation            = "23514"
	pgErrStringDataRightTruncation = "22001"
	pgErrInvalidDatetimeFormat     = "22007"
	pgErrDatetimeFieldOverflow     = "22008"
	pgErrInvalidTextRepresentation = "22P02"

	pgErrSerializationFailure   = "40001"
	pgErrDeadlockDetected       = "40P01"
	pgErrLockNotAvailable       = "55P03"
	pgErrReadOnlySQLTransaction = "25006"
	pgErrCannotConnectNow       = "57P03"
)

// constraint name suffixes postgres generates by default
var constraintSuffixes = []string{"_fkey", "_pkey", "_key", "_check", "_not_null"}

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether the error is a Postgres error with the given SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports whether the error is a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgErrUniqueViolation) }

// IsForeignKeyViolation reports whether the error is a foreign key constraint violation
func IsForeignKeyViolation(err error) bool { return IsSQLState(err, pgErrForeignKeyViolation) }

// IsCheckViolation reports whether the error is a check constraint violation
func IsCheckViolation(err error) bool { return IsSQLState(err, pgErrCheckViolation) }

// DBErrorCode maps a Postgres error to an ErrorCode
// ok is false when err is not a PgError
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgErrUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case pgErrForeignKeyViolation:
		// input referenced a row that does not exist
		return ErrorCodeInvalidArgument, true
	case pgErrNotNullViolation, pgErrCheckViolation:
		return ErrorCodeValidation, true
	case pgErrStringDataRightTruncation, pgErrInvalidTextRepresentation,
		pgErrInvalidDatetimeFormat, pgErrDatetimeFieldOverflow:
		return ErrorCodeInvalidArgument, true
	case pgErrReadOnlySQLTransaction, pgErrCannotConnectNow:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps a pg error with a mapped ErrorCode and message, nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// FromPostgresf is the formatted variant of FromPostgres
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// PgField infers the offending column from a PgError
// ColumnName wins, otherwise the constraint name minus its table prefix and
// generated suffix (classes_course_id_fkey on classes gives course_id)
func PgField(pgErr *pgconn.PgError) string {
	if pgErr == nil {
		return ""
	}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return col
	}
	c := strings.TrimSpace(pgErr.ConstraintName)
	if c == "" {
		return ""
	}
	if t := strings.TrimSpace(pgErr.TableName); t != "" {
		c = strings.TrimPrefix(c, t+"_")
	}
	for _, suf := range constraintSuffixes {
		if strings.HasSuffix(c, suf) {
			c = strings.TrimSuffix(c, suf)
			break
		}
	}
	return c
}

// AttachFieldFromPg sets the field of err from its PgError when one can be inferred
func AttachFieldFromPg(err error) error {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return err
	}
	if f := PgField(pgErr); f != "" {
		return WithField(err, f)
	}
	return err
}

// FromPostgresWithField is FromPostgres plus AttachFieldFromPg
func FromPostgresWithField(err error, msg string) error {
	return AttachFieldFromPg(FromPostgres(err, msg))
}

// IsRetryable reports whether a database error is a transient condition worth
// retrying, by SQLSTATE or by the text pgx emits on commit
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	// local cancellations belong to the caller
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	root := Root(err)

	var pgErr *pgconn.PgError
	if stderrs.As(root, &pgErr) {
		switch pgErr.Code {
		case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrLockNotAvailable:
			return true
		default:
			return false
		}
	}

	s := strings.ToLower(root.Error())
	switch {
	case strings.Contains(s, "commit unexpectedly resulted in rollback"),
		strings.Contains(s, "deadlock detected"),
		strings.Contains(s, "could not serialize access"),
		strings.Contains(s, "canceling statement due to lock timeout"),
		strings.Contains(s, "terminating connection due to administrator command"):
		return true
	default:
		return false
	}
}
