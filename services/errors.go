package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is matched by lookups that found no row
	ErrNotFound = errors.New("record not found")
	// ErrConflict is matched by writes rejected by a unique constraint
	ErrConflict = errors.New("unique constraint conflict")
)

// Store error codes. Integrity violations reuse the PostgreSQL SQLSTATE so
// postgres and sqlite failures classify the same way.
const (
	PgErrUniqueViolation     = "23505" // unique_violation
	PgErrForeignKeyViolation = "23503" // foreign_key_violation
	PgErrNotNullViolation    = "23502" // not_null_violation
	PgErrCheckViolation      = "23514" // check_violation

	CodeNotFound      = "NOT_FOUND"
	CodeDatabaseError = "DATABASE_ERROR"
)

// StoreError represents an error in the persistence layer
type StoreError struct {
	Code    string
	Message string
	Detail  string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Message, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s [%s]", e.Message, e.Code)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is lets callers test with errors.Is(err, ErrConflict) or ErrNotFound
func (e *StoreError) Is(target error) bool {
	switch target {
	case ErrConflict:
		return e.Code == PgErrUniqueViolation
	case ErrNotFound:
		return e.Code == CodeNotFound
	}
	return false
}

// wrapStoreError classifies a gorm/driver error. Errors already classified
// pass through unchanged.
func wrapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &StoreError{Code: CodeNotFound, Message: op, Detail: err.Error(), Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &StoreError{Code: pgErr.Code, Message: op, Detail: pgErr.Message, Err: err}
	}

	// TranslateError turns driver errors into gorm sentinels
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &StoreError{Code: PgErrUniqueViolation, Message: op, Detail: err.Error(), Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &StoreError{Code: PgErrForeignKeyViolation, Message: op, Detail: err.Error(), Err: err}
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		// sqlite drivers that predate error translation
		return &StoreError{Code: PgErrUniqueViolation, Message: op, Detail: err.Error(), Err: err}
	}

	return &StoreError{Code: CodeDatabaseError, Message: op, Detail: err.Error(), Err: err}
}
