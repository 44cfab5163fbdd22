// Package errors provides standardized error handling for the application
// intake service.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Validation errors: rejected at the intake boundary, surfaced as HTTP 400.
const (
	ErrCodeRequiredFieldMissing ErrorCode = "REQUIRED_FIELD_MISSING"
	ErrCodeInvalidNationalID    ErrorCode = "INVALID_NATIONAL_ID"
	ErrCodeInvalidEmail         ErrorCode = "INVALID_EMAIL"
	ErrCodePhotoMissing         ErrorCode = "PHOTO_MISSING"
	ErrCodeAttachmentTooLarge   ErrorCode = "ATTACHMENT_TOO_LARGE"
	ErrCodeUnsupportedMedia     ErrorCode = "UNSUPPORTED_MEDIA_TYPE"
	ErrCodeMalformedRequest     ErrorCode = "MALFORMED_REQUEST"
	ErrCodeSchemaValidation     ErrorCode = "SCHEMA_VALIDATION_FAILED"
)

// Render errors: fatal to the current render, surfaced as HTTP 500.
const (
	ErrCodeFontUnavailable ErrorCode = "FONT_UNAVAILABLE"
	ErrCodeRenderFailed    ErrorCode = "RENDER_FAILED"
)

// Delivery errors: reported and logged, never surfaced to the applicant.
const (
	ErrCodeEmailSendFailed ErrorCode = "EMAIL_SEND_FAILED"
)

const ErrCodeInternal ErrorCode = "INTERNAL_ERROR"

// StandardError represents a structured application error. Code is the
// stable machine-readable kind; Message is the human-language explanation
// returned alongside it.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// Error Constructors
// ==========================

// NewRequiredFieldMissingError creates a non-retryable validation error for
// an absent or empty required form field.
func NewRequiredFieldMissingError(field string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequiredFieldMissing,
		Message:   fmt.Sprintf("Required field '%s' is missing", field),
		Details:   fmt.Sprintf("field: %s", field),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidNationalIDError creates a non-retryable validation error for a
// national ID that is not 13 digits after normalization.
func NewInvalidNationalIDError(digits int) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidNationalID,
		Message:   "National ID must contain exactly 13 digits",
		Details:   fmt.Sprintf("got %d digits after normalization", digits),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidEmailError creates a non-retryable validation error for a
// malformed email address.
func NewInvalidEmailError(email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidEmail,
		Message:   "Email address is not valid",
		Details:   fmt.Sprintf("email: %s", email),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPhotoMissingError creates a non-retryable validation error for a
// submission without the required photo file.
func NewPhotoMissingError() *StandardError {
	return &StandardError{
		Code:      ErrCodePhotoMissing,
		Message:   "A photo file is required",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAttachmentTooLargeError creates a non-retryable validation error for an
// uploaded file exceeding the configured size limit.
func NewAttachmentTooLargeError(field string, limit int64) *StandardError {
	return &StandardError{
		Code:      ErrCodeAttachmentTooLarge,
		Message:   fmt.Sprintf("Uploaded file '%s' exceeds the size limit", field),
		Details:   fmt.Sprintf("limit: %d bytes", limit),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedMediaError creates a non-retryable validation error for an
// uploaded file of an unexpected content type.
func NewUnsupportedMediaError(field, contentType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedMedia,
		Message:   fmt.Sprintf("Uploaded file '%s' has an unsupported type", field),
		Details:   fmt.Sprintf("contentType: %s", contentType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedRequestError creates a non-retryable validation error for a
// request body that cannot be parsed at all.
func NewMalformedRequestError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedRequest,
		Message:   "Request body could not be parsed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaValidationError creates a non-retryable validation error for a
// JSON submission that fails schema validation.
func NewSchemaValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaValidation,
		Message:   "Submission does not match the expected schema",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFontUnavailableError creates a render-fatal resource acquisition error.
// It fires before any page is started so no partial document is produced.
func NewFontUnavailableError(name string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFontUnavailable,
		Message:   "Required font data could not be acquired",
		Details:   fmt.Sprintf("font: %s, error: %s", name, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRenderFailedError creates a render-fatal error for a structural
// failure during document drawing or serialization.
func NewRenderFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRenderFailed,
		Message:   "Document rendering failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailSendFailedError creates a retryable delivery error. Delivery
// failures are logged by the caller and never fail the submission.
func NewEmailSendFailedError(role string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailSendFailed,
		Message:   "Notification email delivery failed",
		Details:   fmt.Sprintf("role: %s, error: %s", role, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// HTTP Mapping
// ==========================

// httpStatusByCode maps error codes to HTTP status codes. Validation errors
// become 400; render and resource failures become 500.
var httpStatusByCode = map[ErrorCode]int{
	ErrCodeRequiredFieldMissing: 400,
	ErrCodeInvalidNationalID:    400,
	ErrCodeInvalidEmail:         400,
	ErrCodePhotoMissing:         400,
	ErrCodeAttachmentTooLarge:   400,
	ErrCodeUnsupportedMedia:     400,
	ErrCodeMalformedRequest:     400,
	ErrCodeSchemaValidation:     400,
	ErrCodeFontUnavailable:      500,
	ErrCodeRenderFailed:         500,
	ErrCodeEmailSendFailed:      500,
	ErrCodeInternal:             500,
}

// HTTPStatus returns the HTTP status for an error code, defaulting to 500
// for unknown codes.
func HTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusByCode[code]; ok {
		return status
	}
	return 500
}

// IsValidation reports whether the code belongs to the validation family.
func IsValidation(code ErrorCode) bool {
	return HTTPStatus(code) == 400
}

// Normalize ensures any error is a *StandardError.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return NewInternalError(err)
}
