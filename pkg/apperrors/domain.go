package apperrors

import "net/http"

// Factories and predefined errors for common business-logic failures.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict reports a duplicate unique field. The original API contract
// returns 400 on duplicate identity at registration, so the HTTP code is a
// parameter rather than a fixed 409.
func ErrConflict(domain, message string, httpCode int) *AppError {
	return New(CodeConflict, domain, message, httpCode)
}

// ErrInvalidOperation reports an operation the current state forbids.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus reports an illegal lifecycle transition. The message
// must name the expected precondition, not just "invalid".
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrUpstream wraps a failure from an external service (AI model, email).
func ErrUpstream(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusInternalServerError)
}

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username/email or password",
	http.StatusUnauthorized,
)

var ErrInvalidVerificationToken = New(
	CodeInvalidToken,
	"auth",
	"Verification token is invalid or has expired",
	http.StatusBadRequest,
)

var ErrAlreadyVerified = New(
	CodeInvalidOperation,
	"auth",
	"This account is already verified",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)
