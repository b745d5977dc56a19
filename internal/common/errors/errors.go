// Package errors provides standardized error handling for the insight pipeline.
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	ErrCodeCategoryNotSelected ErrorCode = "CATEGORY_NOT_SELECTED"

	ErrCodeCollegeNotFound ErrorCode = "COLLEGE_NOT_FOUND"
	ErrCodeCourseNotFound  ErrorCode = "COURSE_NOT_FOUND"

	ErrCodeCatalogLoadFailed   ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeCatalogSchemaFailed ErrorCode = "CATALOG_SCHEMA_FAILED"

	ErrCodeNarrativeTransportFailed ErrorCode = "NARRATIVE_TRANSPORT_FAILED"
	ErrCodeNarrativeTimeout         ErrorCode = "NARRATIVE_TIMEOUT"
	ErrCodeNarrativeSchemaViolation ErrorCode = "NARRATIVE_SCHEMA_VIOLATION"

	ErrCodeSubmissionPending ErrorCode = "SUBMISSION_PENDING"
)

// GenericGenerationFailure is the single user-facing message for every
// narrative-generation failure, transport and schema alike.
const GenericGenerationFailure = "Failed to generate insights. Please try again later."

// FieldError describes a single form-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StandardError represents a structured application error.
type StandardError struct {
	Code        ErrorCode              `json:"code"`
	Message     string                 `json:"message"`
	Details     string                 `json:"details,omitempty"`
	FieldErrors []FieldError           `json:"fieldErrors,omitempty"`
	Retryable   bool                   `json:"retryable"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// UserMessage returns the message safe to surface to the UI collaborator.
// Validation errors keep their detail; generation failures collapse to the
// one generic message.
func (e *StandardError) UserMessage() string {
	switch e.Code {
	case ErrCodeNarrativeTransportFailed, ErrCodeNarrativeTimeout, ErrCodeNarrativeSchemaViolation:
		return GenericGenerationFailure
	}
	return e.Message
}

// NewValidationFailedError creates a non-retryable error carrying per-field detail.
func NewValidationFailedError(fieldErrors []FieldError) *StandardError {
	fields := make([]string, len(fieldErrors))
	for i, fe := range fieldErrors {
		fields[i] = fe.Field
	}
	return &StandardError{
		Code:        ErrCodeValidationFailed,
		Message:     "Request validation failed",
		Details:     strings.Join(fields, ", "),
		FieldErrors: fieldErrors,
		Retryable:   false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewCollegeNotFoundError creates a non-retryable lookup error.
func NewCollegeNotFoundError(collegeID int) *StandardError {
	return &StandardError{
		Code:      ErrCodeCollegeNotFound,
		Message:   "College not found in catalog",
		Details:   fmt.Sprintf("collegeId: %d", collegeID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCourseNotFoundError creates a non-retryable lookup error.
func NewCourseNotFoundError(collegeID, courseID int) *StandardError {
	return &StandardError{
		Code:      ErrCodeCourseNotFound,
		Message:   "Course not found for college",
		Details:   fmt.Sprintf("collegeId: %d, courseId: %d", collegeID, courseID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadFailedError creates a fatal startup error.
func NewCatalogLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Catalog dataset could not be loaded",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogSchemaFailedError reports a dataset failing its JSON schema.
func NewCatalogSchemaFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogSchemaFailed,
		Message:   "Catalog dataset failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNarrativeTransportError reports an unreachable generation service.
func NewNarrativeTransportError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNarrativeTransportFailed,
		Message:   GenericGenerationFailure,
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNarrativeTimeoutError reports a generation call exceeding its deadline.
func NewNarrativeTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNarrativeTimeout,
		Message:   GenericGenerationFailure,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNarrativeSchemaViolationError reports a reply outside the two-field contract.
func NewNarrativeSchemaViolationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNarrativeSchemaViolation,
		Message:   GenericGenerationFailure,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// AsStandardError unwraps err to a *StandardError if one is in the chain.
func AsStandardError(err error) (*StandardError, bool) {
	var se *StandardError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	if se, ok := AsStandardError(err); ok {
		return se.Code == code
	}
	return false
}
