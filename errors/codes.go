package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeWeakPassword indicates the password failed one or more strength rules.
	ErrCodeWeakPassword ErrorCode = "WEAK_PASSWORD"
)

// Credential/account errors
const (
	// ErrCodeDuplicateEmail indicates an account with the email already exists.
	ErrCodeDuplicateEmail ErrorCode = "DUPLICATE_EMAIL"
	// ErrCodeInvalidCredentials indicates the email/password combination was rejected.
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Token/authorization errors
const (
	// ErrCodeMissingToken indicates no bearer token was supplied.
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	// ErrCodeInvalidToken indicates the bearer token is malformed, tampered, or expired.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	// ErrCodeUnauthenticated indicates no identity is attached to the request.
	ErrCodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	// ErrCodeInsufficientRole indicates the authenticated role is not allowed on the route.
	ErrCodeInsufficientRole ErrorCode = "INSUFFICIENT_ROLE"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeDatabaseError indicates a database error.
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeDatabaseError: true,
	ErrCodeInternal:      false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
