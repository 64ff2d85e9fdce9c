package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrColumnNotFound indicates a table has no column with the requested header.
	ErrColumnNotFound = errors.New("column not found")

	// ErrColumnLength indicates a replacement column does not match the row count.
	ErrColumnLength = errors.New("column length mismatch")

	// ErrDuplicateColumn indicates a table header appears more than once.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrUnknownRule indicates a column binding names an unregistered normaliser.
	ErrUnknownRule = errors.New("unknown normalisation rule")

	// ErrUnsupportedFormat indicates no table adapter handles a file extension.
	ErrUnsupportedFormat = errors.New("unsupported table format")
)
