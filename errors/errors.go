// Package errors provides unified error handling for the authentication
// service. It implements structured error types with error codes, HTTP
// status mapping, and retryable detection following RFC 7807.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	// It is logged server-side and never serialized to clients.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Constructors, one per failure the service can surface ---

// Validation creates a new AppError for malformed input.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"field": field},
	}
}

// WeakPassword creates a new AppError carrying every violated strength rule.
func WeakPassword(rules []string) *AppError {
	return &AppError{
		Code: ErrCodeWeakPassword, Message: "Password does not meet the strength requirements.",
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"rules": rules},
	}
}

// DuplicateEmail creates a new AppError for a registration against an
// already-registered email.
func DuplicateEmail() *AppError {
	return &AppError{
		Code: ErrCodeDuplicateEmail, Message: "An account with this email already exists.",
		HTTPStatus: http.StatusConflict, Retryable: false,
	}
}

// InvalidCredentials creates a new AppError for a rejected login or refresh.
// The message is deliberately identical for unknown emails and wrong
// passwords so responses reveal nothing about account existence.
func InvalidCredentials() *AppError {
	return &AppError{
		Code: ErrCodeInvalidCredentials, Message: "Invalid email or password.",
		HTTPStatus: http.StatusUnauthorized, Retryable: false,
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound, Retryable: false,
		Details: map[string]any{"resource": resource},
	}
}

// MissingToken creates a new AppError for a request without a bearer token.
func MissingToken() *AppError {
	return &AppError{
		Code: ErrCodeMissingToken, Message: "Authentication required.",
		HTTPStatus: http.StatusUnauthorized, Retryable: false,
	}
}

// InvalidToken creates a new AppError for a rejected bearer token.
// kind is "access" or "refresh". The message never distinguishes an
// expired token from a tampered one.
func InvalidToken(kind string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidToken, Message: "Invalid or expired token.",
		HTTPStatus: http.StatusUnauthorized, Retryable: false,
		Details: map[string]any{"kind": kind},
	}
}

// Unauthenticated creates a new AppError for a request that reached an
// authorization check without an attached identity.
func Unauthenticated() *AppError {
	return &AppError{
		Code: ErrCodeUnauthenticated, Message: "Authentication required.",
		HTTPStatus: http.StatusUnauthorized, Retryable: false,
	}
}

// InsufficientRole creates a new AppError for an authenticated identity
// whose role is not in the route's allowed set.
func InsufficientRole() *AppError {
	return &AppError{
		Code: ErrCodeInsufficientRole, Message: "You don't have permission to perform this action.",
		HTTPStatus: http.StatusForbidden, Retryable: false,
	}
}

// Internal creates a new AppError for an internal server error.
// The cause is kept for server-side logging only.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred. Please try again.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}

// DatabaseError creates a new AppError for a database failure.
func DatabaseError(cause error) *AppError {
	return &AppError{
		Code: ErrCodeDatabaseError, Message: "A storage error occurred. Please try again.",
		HTTPStatus: http.StatusInternalServerError, Retryable: true, Cause: cause,
	}
}
