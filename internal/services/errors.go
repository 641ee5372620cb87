package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sbilibin2017/tcg-trading-api/internal/sqlerr"
)

// Error variables
var (
	ErrNotFound               = errors.New("record not found")
	ErrUserAlreadyExists      = errors.New("username or email already exists")
	ErrUserDoesNotExist       = errors.New("username does not exist")
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrInvalidDate            = errors.New("invalid date format, use YYYY-MM-DD")
	ErrRarityOrSetNotFound    = errors.New("rarity ID or set ID not found")
	ErrStatusNotSeeded        = errors.New("trade statuses are missing, seed the database")
	ErrSameUserTrade          = errors.New("a trade needs two different users")
	ErrInvalidTradeQuantities = errors.New("trade quantities must be positive")
)

// NotFoundError reports a missing record. It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d does not exist", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// notFound turns sql.ErrNoRows into a *NotFoundError for resource/id.
func notFound(err error, resource string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return err
}

func isUniqueViolation(err error) bool {
	return sqlerr.ErrCode(err) == sqlerr.UniqueViolation
}
