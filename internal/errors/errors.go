// Package errors defines the structured error taxonomy for the menu dataset
// pipeline. Every error carries a stable code, a human-readable message, and
// optional details locating the failure in the source data. All errors are
// fatal to the current run at the point of first detection.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for the four failure classes of the pipeline.
const (
	CodeStructural = "STRUCTURAL_ERROR"
	CodeFormat     = "FORMAT_ERROR"
	CodePrecision  = "PRECISION_ERROR"
	CodeAccess     = "ACCESS_ERROR"
)

// DataError represents a structured pipeline error
type DataError struct {
	Code    string      `json:"error_code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *DataError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any
func (e *DataError) Unwrap() error {
	return e.cause
}

// FieldDetails locates a failing field within the source data.
type FieldDetails struct {
	Row   int    `json:"row"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// StructuralDetails names the columns missing from the source schema.
type StructuralDetails struct {
	MissingColumns  []string `json:"missing_columns"`
	RequiredColumns []string `json:"required_columns"`
}

// New creates a new DataError with the given code and message
func New(code, message string) *DataError {
	return &DataError{Code: code, Message: message}
}

// NewStructuralError reports a source schema missing required columns.
func NewStructuralError(missing, required []string) *DataError {
	return &DataError{
		Code:    CodeStructural,
		Message: fmt.Sprintf("invalid dataset structure: missing columns: %s", strings.Join(missing, ", ")),
		Details: StructuralDetails{MissingColumns: missing, RequiredColumns: required},
	}
}

// NewFormatError reports a field that failed to parse as its expected type
// or a fixed-arity field with the wrong number of values.
func NewFormatError(row int, field, value, reason string) *DataError {
	return &DataError{
		Code:    CodeFormat,
		Message: fmt.Sprintf("data error in row %d: %s", row, reason),
		Details: FieldDetails{Row: row, Field: field, Value: value},
	}
}

// NewPrecisionError reports a value exceeding the allowed fractional-digit count.
func NewPrecisionError(value float64, maxDecimals int) *DataError {
	return &DataError{
		Code:    CodePrecision,
		Message: fmt.Sprintf("value %v exceeds the allowed %d decimal places", value, maxDecimals),
	}
}

// NewAccessError reports a source that cannot be opened or read.
func NewAccessError(path string, err error) *DataError {
	return &DataError{
		Code:    CodeAccess,
		Message: fmt.Sprintf("cannot access dataset %s: %v", path, err),
		Details: path,
		cause:   err,
	}
}

// WithLocation returns a copy of the error annotated with the row and field
// it was detected in. Used by the record parser to attach source context to
// errors raised by lower-level validators.
func WithLocation(e *DataError, row int, field, value string) *DataError {
	return &DataError{
		Code:    e.Code,
		Message: fmt.Sprintf("data error in row %d: %s", row, e.Message),
		Details: FieldDetails{Row: row, Field: field, Value: value},
		cause:   e.cause,
	}
}

// HasCode reports whether err is a DataError carrying the given code.
func HasCode(err error, code string) bool {
	var de *DataError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// IsStructural reports whether err is a schema error.
func IsStructural(err error) bool { return HasCode(err, CodeStructural) }

// IsFormat reports whether err is a field format or arity error.
func IsFormat(err error) bool { return HasCode(err, CodeFormat) }

// IsPrecision reports whether err is a fractional-digit precision error.
func IsPrecision(err error) bool { return HasCode(err, CodePrecision) }

// IsAccess reports whether err is a source access error.
func IsAccess(err error) bool { return HasCode(err, CodeAccess) }
