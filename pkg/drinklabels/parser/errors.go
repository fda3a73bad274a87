package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
)

// ErrUnsupportedFormat indicates the input is neither CSV nor XLSX.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrMissingColumn indicates the header row lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// ErrNoHeader indicates the input ended before the header row.
var ErrNoHeader = errors.New("header row not found")

// ErrMissingTableNumber indicates a row has no table number.
var ErrMissingTableNumber = errors.New("missing table number")

// ErrInvalidTableNumber indicates the primary table number is not numeric.
var ErrInvalidTableNumber = errors.New("invalid table number")

// RowError represents a failure to parse one spreadsheet row.
type RowError struct {
	Line  int
	Field models.Field
	Err   error
}

func (e *RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Field, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// NewRowError creates a new RowError.
func NewRowError(line int, field models.Field, err error) *RowError {
	return &RowError{
		Line:  line,
		Field: field,
		Err:   err,
	}
}

// Failure converts the error into its serialisable form.
func (e *RowError) Failure() models.RowFailure {
	return models.RowFailure{
		Line:    e.Line,
		Field:   e.Field,
		Message: e.Err.Error(),
	}
}
