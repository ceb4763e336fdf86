// Package apperr holds error kinds shared by every resource domain.
package apperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is wrapped by each domain's "<resource> not found" sentinel.
	ErrNotFound = errors.New("not found")

	// ErrValidation matches every *ValidationError through errors.Is.
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries the field-level message produced by ozzo-validation
// (or by a store-side CHECK constraint) verbatim.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validation wraps err; nil stays nil so callers can pass validator output directly.
func Validation(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}

// FromPostgres maps constraint violations to validation errors; anything else
// is returned unchanged.
func FromPostgres(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502", "23514": // not_null_violation, check_violation
			return Validation(errors.New(pgErr.Message))
		}
	}
	return err
}

// HTTPStatus maps an error kind to a response status.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
