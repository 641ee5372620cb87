// Package sqlerr translates PostgreSQL driver errors into typed errors
// that the service layer can branch on without knowing SQLSTATE codes.
package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is the category of a constraint failure.
type Code string

const (
	Other               Code = "other"
	ForeignKeyViolation Code = "foreign_key_violation"
	ForeignKeyInUse     Code = "foreign_key_in_use"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	NotNullViolation    Code = "not_null_violation"
)

// SQLSTATE values, see https://www.postgresql.org/docs/current/errcodes-appendix.html
var codes = map[string]Code{
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"23502": NotNullViolation,
}

// Error is a normalized database constraint error.
type Error struct {
	Code       Code
	Table      string
	Constraint string
	Column     string
	Detail     string
	Message    string

	driverErr error
}

func (e *Error) Error() string {
	var msg string
	switch e.Code {
	case ForeignKeyViolation:
		msg = "referenced record does not exist"
	case ForeignKeyInUse:
		msg = "record is still referenced"
	case UniqueViolation:
		msg = "record already exists"
	case CheckViolation:
		msg = "value is out of the allowed range"
	case NotNullViolation:
		msg = "required value is missing"
	default:
		return e.Message
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", msg, strings.TrimSuffix(e.Detail, "."))
	}
	if e.Column != "" {
		return fmt.Sprintf("%s: %s", msg, e.Column)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE to a Code.
func MapCode(sqlState string) Code {
	if c, ok := codes[sqlState]; ok {
		return c
	}
	return Other
}

// Convert returns a *Error when err wraps a *pgconn.PgError with a known
// constraint SQLSTATE. Any other error is returned unchanged.
func Convert(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	code := MapCode(pgErr.Code)
	if code == Other {
		return err
	}
	if code == ForeignKeyViolation && stillReferenced(pgErr) {
		code = ForeignKeyInUse
	}
	return &Error{
		Code:       code,
		Table:      pgErr.TableName,
		Constraint: pgErr.ConstraintName,
		Column:     pgErr.ColumnName,
		Detail:     pgErr.Detail,
		Message:    pgErr.Message,
		driverErr:  pgErr,
	}
}

// stillReferenced reports whether a 23503 was raised on the referenced side,
// i.e. by ON DELETE RESTRICT rather than by a dangling reference.
func stillReferenced(pgErr *pgconn.PgError) bool {
	return strings.HasPrefix(pgErr.Message, "update or delete on table") ||
		strings.Contains(pgErr.Detail, "is still referenced")
}

// ErrCode reports the Code of err, or Other when err is not a *Error.
func ErrCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Other
}
