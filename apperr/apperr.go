// Package apperr defines the typed application errors every handler failure
// is funneled through, and the single mapping from those errors to HTTP
// status codes and the JSON error envelope.
package apperr

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

type Kind string

const (
	KindValidation   Kind = "ValidationError"
	KindUnauthorized Kind = "UnauthorizedError"
	KindForbidden    Kind = "ForbiddenError"
	KindNotFound     Kind = "NotFoundError"
	KindConflict     Kind = "ConflictError"
	KindInternal     Kind = "InternalServerError"
)

type Error struct {
	Kind    Kind
	Message string
	Details []string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func Validation(message string, details ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Status maps an error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// From normalizes any error to an *Error. Already-typed errors pass through;
// datastore unique-violations become Conflict, missing rows NotFound, and
// everything else Internal with a user-safe message. Raw datastore text never
// reaches the message.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if IsUniqueViolation(err) {
		return Conflict("Duplicate entry")
	}
	if errors.Is(err, sql.ErrNoRows) {
		return NotFound("Resource not found")
	}
	return &Error{Kind: KindInternal, Message: "Internal server error, please try again later"}
}

// IsUniqueViolation reports whether err is a uniqueness-constraint rejection
// from either supported driver.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
