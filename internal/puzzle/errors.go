package puzzle

import "errors"

// ErrMalformedInput is returned when a puzzle string is not 81 decimal
// digits.
var ErrMalformedInput = errors.New("puzzle: malformed input")

// ErrConstraintViolation is returned when a puzzle's given clues already
// break row, column, or box uniqueness before any solving has happened.
var ErrConstraintViolation = errors.New("puzzle: constraint violation")
