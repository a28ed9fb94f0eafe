package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the acting user is not permitted to perform the operation.
var ErrForbidden = errors.New("operation not permitted for this user")

// ErrInvalidState indicates the operation is not allowed from the entity's current status.
var ErrInvalidState = errors.New("operation not allowed in current state")

// ErrStorageFull indicates the underlying store rejected a write for capacity reasons.
// The previous collection contents are left intact; callers should surface this as a
// recoverable condition rather than assume the write succeeded.
var ErrStorageFull = errors.New("storage capacity exceeded")

// ErrAlreadyConverted is a soft signal: the plan entry already has a visit report, so
// there is nothing to do and the caller should redirect to the existing report.
var ErrAlreadyConverted = errors.New("entry already converted to a visit report")

// AppError wraps an underlying error with a code and a caller-facing message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping cause.
func NewAppError(code int, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Err: cause}
}

// ValidationError collects every violated field of a request so the caller can render
// all issues at once instead of failing on the first.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates an empty ValidationError ready to collect fields.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Addf records a violation for the named field.
func (e *ValidationError) Addf(field, format string, args ...any) {
	e.Fields[field] = fmt.Sprintf(format, args...)
}

// HasErrors reports whether any field violations were recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, f := range names {
		parts[i] = f + ": " + e.Fields[f]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidation) match a ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationFailedError creates a single-field validation error.
func NewValidationFailedError(field, message string) *ValidationError {
	ve := NewValidationError()
	ve.Fields[field] = message
	return ve
}
