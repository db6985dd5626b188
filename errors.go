package rowmap

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for common operations.
var (
	// ErrMissingColumn is returned when a field's column is absent
	// from the row it is cleaned against.
	ErrMissingColumn = errors.New("rowmap: column not found")

	// ErrConversion is returned when a widget rejects a raw cell value.
	ErrConversion = errors.New("rowmap: value conversion failed")

	// ErrNoIdentity is reported by object adapters when an attribute
	// cannot be read because the object has no identity yet (e.g. an
	// unsaved record queried for a many-to-many relation).
	ErrNoIdentity = errors.New("rowmap: object has no identity")

	// ErrNotExist is reported by object adapters when a related lookup
	// fails its existence check.
	ErrNotExist = errors.New("rowmap: related object does not exist")
)

// MissingColumnError represents an error when a field's column is not
// present in a row. It carries the available column names so callers
// can see what the dataset actually provided.
type MissingColumnError struct {
	Column    string
	Available []string
}

// Error returns the error string.
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("rowmap: column %q not found in dataset. Available columns are: [%s]",
		e.Column, strings.Join(e.Available, ", "))
}

// Is reports whether the target error matches MissingColumnError.
// This allows errors.Is(err, ErrMissingColumn) to return true.
func (e *MissingColumnError) Is(err error) bool {
	return err == ErrMissingColumn
}

// NewMissingColumnError returns a new MissingColumnError for the given
// column, recording the columns that were available.
func NewMissingColumnError(column string, available []string) *MissingColumnError {
	return &MissingColumnError{Column: column, Available: available}
}

// IsMissingColumn returns true if the error is a MissingColumnError.
func IsMissingColumn(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingColumnError
	return errors.As(err, &e) || errors.Is(err, ErrMissingColumn)
}

// ConversionError wraps a widget conversion failure with the column it
// occurred on. The original widget error is preserved and reachable
// via Unwrap.
type ConversionError struct {
	Column string
	Err    error
}

// Error returns the error string.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("rowmap: column %q: %v", e.Column, e.Err)
}

// Unwrap returns the underlying widget error.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches ConversionError.
// This allows errors.Is(err, ErrConversion) to return true.
func (e *ConversionError) Is(err error) bool {
	return err == ErrConversion
}

// NewConversionError returns a new ConversionError for the given column.
func NewConversionError(column string, err error) *ConversionError {
	return &ConversionError{Column: column, Err: err}
}

// IsConversion returns true if the error is a ConversionError.
func IsConversion(err error) bool {
	if err == nil {
		return false
	}
	var e *ConversionError
	return errors.As(err, &e) || errors.Is(err, ErrConversion)
}
