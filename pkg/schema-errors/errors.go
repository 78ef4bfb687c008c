// Package schemaerrors defines the error kinds surfaced by the contracts
// library. Every construction failure is a validation error carrying a code
// and the path of the offending field; compatibility failures are produced
// only by the schema-evolution checker, never at runtime.
package schemaerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for programmatic handling.
type Code string

const (
	// CodeMissingField: a required field was absent from the input.
	CodeMissingField Code = "MISSING_FIELD"
	// CodeTypeMismatch: a field's value does not match its declared semantic type.
	CodeTypeMismatch Code = "TYPE_MISMATCH"
	// CodeEnumViolation: an enum field holds a value outside its declared variant set.
	CodeEnumViolation Code = "ENUM_VIOLATION"
	// CodeInvariantViolation: a cross-field invariant was violated.
	CodeInvariantViolation Code = "INVARIANT_VIOLATION"
	// CodeBreakingChange: a schema change is not additive within a minor version.
	CodeBreakingChange Code = "BREAKING_CHANGE"
)

// Error is the single error type produced by this library.
//
// Field is the dotted path of the offending field ("lines.2.amount") for
// validation errors, or the schema path ("Transaction.status") for
// compatibility errors. Field may be empty when the error applies to the
// record as a whole.
type Error struct {
	Code   Code
	Field  string
	Reason string
	cause  error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates an error with a code and reason but no field path.
func New(code Code, reason string) *Error {
	return &Error{Code: code, Reason: reason}
}

// NewField creates an error naming the offending field.
func NewField(code Code, field, reason string) *Error {
	return &Error{Code: code, Field: field, Reason: reason}
}

// Wrap attaches a code and field path to an underlying error.
func Wrap(err error, code Code, field, reason string) *Error {
	return &Error{Code: code, Field: field, Reason: reason, cause: err}
}

// Missing reports a required field as absent.
func Missing(field string) *Error {
	return NewField(CodeMissingField, field, "required field is missing")
}

// TypeMismatch reports a field whose value does not fit its semantic type.
func TypeMismatch(field, reason string) *Error {
	return NewField(CodeTypeMismatch, field, reason)
}

// EnumViolation reports a value outside an enum's declared variant set.
func EnumViolation(field string, value any) *Error {
	return NewField(CodeEnumViolation, field, fmt.Sprintf("value %q is not a declared variant", value))
}

// Invariant reports a cross-field invariant violation.
func Invariant(field, reason string) *Error {
	return NewField(CodeInvariantViolation, field, reason)
}

// Prefix re-roots the field path of a nested validation error, so a failure
// inside element 2 of "lines" surfaces as "lines.2.<field>".
func Prefix(err error, prefix string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	field := prefix
	if e.Field != "" {
		field = prefix + "." + e.Field
	}
	return &Error{Code: e.Code, Field: field, Reason: e.Reason, cause: e.cause}
}

// Coerce returns err unchanged when it already is (or wraps) an *Error,
// otherwise it wraps it with the given code, field, and reason. Used where a
// decode error may already carry a precise field path from a nested type.
func Coerce(err error, code Code, field, reason string) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, code, field, reason)
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}

// IsValidation reports whether err is a construction-time validation failure.
// Compatibility errors are not validation errors.
func IsValidation(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case CodeMissingField, CodeTypeMismatch, CodeEnumViolation, CodeInvariantViolation:
		return true
	}
	return false
}

// FieldOf returns the offending field path, or "" if err carries none.
func FieldOf(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Field
}
