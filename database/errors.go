package database

import (
	"errors"
	"fmt"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"strings"
)

type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintNotNull    ConstraintKind = "not_null"
	ConstraintCheck      ConstraintKind = "check"
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violated")
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")
	ErrNotNullViolation    = errors.New("not null constraint violated")
	ErrCheckViolation      = errors.New("check constraint violated")
)

var kindErrors = map[ConstraintKind]error{
	ConstraintUnique:     ErrUniqueViolation,
	ConstraintForeignKey: ErrForeignKeyViolation,
	ConstraintNotNull:    ErrNotNullViolation,
	ConstraintCheck:      ErrCheckViolation,
}

type ConstraintError struct {
	Kind ConstraintKind
	// Constraint is the constraint name for postgres and the failing
	// columns for sqlite3.
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("%s constraint violated: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s constraint '%s' violated: %v", e.Kind, e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

func (e *ConstraintError) Is(target error) bool {
	return kindErrors[e.Kind] == target
}

var pqConstraintCodes = map[pq.ErrorCode]ConstraintKind{
	"23505": ConstraintUnique,
	"23503": ConstraintForeignKey,
	"23502": ConstraintNotNull,
	"23514": ConstraintCheck,
}

var sqliteConstraintCodes = map[sqlite3.ErrNoExtended]ConstraintKind{
	sqlite3.ErrConstraintUnique:     ConstraintUnique,
	sqlite3.ErrConstraintPrimaryKey: ConstraintUnique,
	sqlite3.ErrConstraintForeignKey: ConstraintForeignKey,
	sqlite3.ErrConstraintNotNull:    ConstraintNotNull,
	sqlite3.ErrConstraintCheck:      ConstraintCheck,
}

// MapError translates driver constraint violations into *ConstraintError.
// Everything else is returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if kind, ok := pqConstraintCodes[pqErr.Code]; ok {
			return &ConstraintError{Kind: kind, Constraint: pqErr.Constraint, Err: err}
		}
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if kind, ok := sqliteConstraintCodes[sqliteErr.ExtendedCode]; ok {
			return &ConstraintError{Kind: kind, Constraint: sqliteConstraint(sqliteErr), Err: err}
		}
	}

	return err
}

// sqlite3 names the columns in the message, e.g. "UNIQUE constraint failed: items.name".
func sqliteConstraint(err sqlite3.Error) string {
	_, columns, found := strings.Cut(err.Error(), "failed: ")
	if !found {
		return ""
	}
	return columns
}
