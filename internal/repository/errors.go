package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrConstraintViolation reports a write rejected by a uniqueness, foreign key or check rule.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrStorageUnavailable reports that the database could not be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ConstraintKind names the rule a write broke.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintCheck      ConstraintKind = "check"
	ConstraintNotNull    ConstraintKind = "not_null"
	ConstraintUnknown    ConstraintKind = "unknown"
)

// ConstraintError describes a constraint violation. It matches
// ErrConstraintViolation under errors.Is.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	msg := fmt.Sprintf("%s constraint violated", e.Kind)
	if e.Constraint != "" {
		msg += fmt.Sprintf(" (%s)", e.Constraint)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConstraintError) Unwrap() error { return e.Err }

func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation
}

// IsUnique reports whether err is a uniqueness violation.
func IsUnique(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) && ce.Kind == ConstraintUnique
}
