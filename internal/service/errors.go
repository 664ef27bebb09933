package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Service-level error taxonomy. Every failure leaving a service is one of
// these sentinels (possibly wrapped); handlers translate them to HTTP status
// categories and never see raw store errors.
var (
	// ErrNoFile means the request carried no file payload.
	ErrNoFile = errors.New("no file uploaded")
	// ErrTitleRequired means the title was missing or blank after trimming.
	ErrTitleRequired = errors.New("title is required")
	// ErrInvalidInput covers other missing/invalid client fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound means no record exists under the given id.
	ErrNotFound = errors.New("record not found")
	// ErrValidation means the record store rejected the row (schema/constraint).
	ErrValidation = errors.New("validation failed")
	// ErrFileMissing means a metadata record exists but its blob is gone —
	// the observable symptom of a past partial failure.
	ErrFileMissing = errors.New("file missing on server")
	// ErrEmailTaken means an account already exists under the email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials means login failed; the cause is deliberately opaque.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrIDRequired means an empty record identifier was supplied.
	ErrIDRequired = errors.New("id is required")
)

// isConstraintViolation reports whether err is a PostgreSQL integrity
// violation (SQLSTATE class 23), i.e. the store rejected the row itself
// rather than failing operationally.
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23"
}

// isUniqueViolation reports a duplicate-key violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
