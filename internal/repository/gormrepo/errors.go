package gormrepo

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"storeapi/internal/repository"
)

// translateError maps driver and gorm errors onto the repository error
// kinds. Errors it does not recognise are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrConstraintViolation) || errors.Is(err, repository.ErrStorageUnavailable) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			return &repository.ConstraintError{Kind: kindFromSQLState(pgErr.Code), Constraint: pgErr.ConstraintName, Err: err}
		case strings.HasPrefix(pgErr.Code, "08"), pgErr.Code == "57P01", pgErr.Code == "57P03":
			return unavailable(err)
		}
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &repository.ConstraintError{Kind: repository.ConstraintUnique, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &repository.ConstraintError{Kind: repository.ConstraintForeignKey, Err: err}
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return &repository.ConstraintError{Kind: repository.ConstraintCheck, Err: err}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return unavailable(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return unavailable(err)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "duplicate key value"), strings.Contains(msg, "UNIQUE constraint failed"):
		return &repository.ConstraintError{Kind: repository.ConstraintUnique, Err: err}
	case strings.Contains(msg, "violates foreign key constraint"), strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &repository.ConstraintError{Kind: repository.ConstraintForeignKey, Err: err}
	case strings.Contains(msg, "CHECK constraint failed"), strings.Contains(msg, "violates check constraint"):
		return &repository.ConstraintError{Kind: repository.ConstraintCheck, Err: err}
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return &repository.ConstraintError{Kind: repository.ConstraintNotNull, Err: err}
	}
	return err
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", repository.ErrStorageUnavailable, err)
}

func kindFromSQLState(code string) repository.ConstraintKind {
	switch code {
	case "23505":
		return repository.ConstraintUnique
	case "23503":
		return repository.ConstraintForeignKey
	case "23514":
		return repository.ConstraintCheck
	case "23502":
		return repository.ConstraintNotNull
	default:
		return repository.ConstraintUnknown
	}
}
