package storage

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("resource not found")
var ErrConflict = errors.New("resource conflict (e.g., duplicate key)")
var ErrDuplicateEmail = errors.New("email already registered")

// ConflictError reports a unique constraint violation and the fields it covers.
type ConflictError struct {
	Constraint string
	Fields     []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("unique constraint %s violated on (%s)", e.Constraint, strings.Join(e.Fields, ", "))
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
