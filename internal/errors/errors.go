// Package errors provides the application error type for the fintrack API.
// Service-layer failures are returned as *AppError so handlers can render a
// stable code and message without leaking internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError carrying the same code, so a
// wrapped or re-messaged error still matches its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authorization errors: missing session, allow-list rejection, foreign resources.
var (
	ErrUnauthorized   = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidSession = &AppError{Code: "INVALID_SESSION", Message: "Invalid or expired session", StatusCode: http.StatusUnauthorized}
	ErrForbidden      = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrNotAllowListed = &AppError{Code: "NOT_ALLOW_LISTED", Message: "This email is not allowed to use the application", StatusCode: http.StatusForbidden}
)

// Validation errors.
var (
	ErrInvalidInput    = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInvalidAmount   = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be a decimal number", StatusCode: http.StatusBadRequest}
	ErrInvalidCategory = &AppError{Code: "INVALID_CATEGORY", Message: "Unknown category", StatusCode: http.StatusBadRequest}
)

// Not found errors.
var (
	ErrNotFound            = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrCardNotFound        = &AppError{Code: "CARD_NOT_FOUND", Message: "Card not found", StatusCode: http.StatusNotFound}
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Conflict errors.
var (
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "Email is already on the allow-list", StatusCode: http.StatusConflict}
)

// Transient errors from the object store or the receipt extractor. They are
// reported once; callers fall back to manual entry.
var (
	ErrUploadFailed     = &AppError{Code: "UPLOAD_FAILED", Message: "There was an error uploading your receipt", StatusCode: http.StatusBadGateway}
	ErrExtractionFailed = &AppError{Code: "EXTRACTION_FAILED", Message: "There was an error extracting details from your receipt", StatusCode: http.StatusBadGateway}
)

// General errors.
var (
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)
