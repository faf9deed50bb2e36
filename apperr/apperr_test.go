package apperr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestFrom_PassesThroughTypedErrors(t *testing.T) {
	t.Parallel()

	orig := Forbidden("no")
	got := From(fmt.Errorf("wrapped: %w", orig))
	assert.Same(t, orig, got)
}

func TestFrom_PostgresUniqueViolation(t *testing.T) {
	t.Parallel()

	err := &pq.Error{Code: "23505", Constraint: "app_user_email_key"}
	got := From(err)
	assert.Equal(t, KindConflict, got.Kind)
	assert.Equal(t, http.StatusConflict, got.Status())
	// raw constraint name must not leak
	assert.NotContains(t, got.Message, "app_user_email_key")
}

func TestFrom_SQLiteUniqueViolation(t *testing.T) {
	t.Parallel()

	err := sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintUnique,
	}
	got := From(err)
	assert.Equal(t, KindConflict, got.Kind)
}

func TestFrom_NoRowsBecomesNotFound(t *testing.T) {
	t.Parallel()

	got := From(fmt.Errorf("query: %w", sql.ErrNoRows))
	assert.Equal(t, KindNotFound, got.Kind)
}

func TestFrom_UnknownErrorIsSafeInternal(t *testing.T) {
	t.Parallel()

	got := From(errors.New("pq: connection refused on 10.0.0.5"))
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, http.StatusInternalServerError, got.Status())
	assert.NotContains(t, got.Message, "10.0.0.5")
}

func TestStatus_AllKinds(t *testing.T) {
	t.Parallel()

	cases := map[Kind]int{
		KindValidation:   http.StatusBadRequest,
		KindUnauthorized: http.StatusUnauthorized,
		KindForbidden:    http.StatusForbidden,
		KindNotFound:     http.StatusNotFound,
		KindConflict:     http.StatusConflict,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		e := &Error{Kind: kind}
		assert.Equal(t, want, e.Status(), string(kind))
	}
}
