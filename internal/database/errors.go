package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrForeignKey means a write referenced a row that does not exist.
	ErrForeignKey = errors.New("referenced row does not exist")
	// ErrUnique means a write violated a unique constraint.
	ErrUnique = errors.New("duplicate value")
	// ErrEnum means a value fell outside a store-enforced enum.
	ErrEnum = errors.New("value outside allowed set")
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgInvalidTextRepr     = "22P02"
)

// Classify maps a Postgres error onto one of the package sentinels so that
// handlers can pick a status code without inspecting driver types. Errors
// that match no known class come back unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return ErrForeignKey
		case pgUniqueViolation:
			return ErrUnique
		case pgInvalidTextRepr:
			if strings.Contains(pgErr.Message, "enum") {
				return ErrEnum
			}
		}
		return err
	}

	// sqlmock and other test drivers surface plain errors, so fall back to
	// matching the message the way the store phrases it.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "violates foreign key constraint"):
		return ErrForeignKey
	case strings.Contains(msg, "violates unique constraint"), strings.Contains(msg, "duplicate key value"):
		return ErrUnique
	case strings.Contains(msg, "invalid input value for enum"):
		return ErrEnum
	}
	return err
}
