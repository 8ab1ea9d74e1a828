package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller lacks the required role
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeQuotaExceeded is used when a vendor's tour quota is exhausted
	ErrCodeQuotaExceeded = "ERR_QUOTA_EXCEEDED"
	// ErrCodeSubscriptionInactive is used when a vendor has no usable subscription
	ErrCodeSubscriptionInactive = "ERR_SUBSCRIPTION_INACTIVE"
	// ErrCodeInvalidGuestCount is used when the guest count violates tour capacity
	ErrCodeInvalidGuestCount = "ERR_INVALID_GUEST_COUNT"
	// ErrCodeTourUnavailable is used when booking an inactive or unapproved tour
	ErrCodeTourUnavailable = "ERR_TOUR_UNAVAILABLE"
	// ErrCodeInvalidState is used when an operation is invalid for the current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodePaymentNotSettled is used when confirming before payment lands
	ErrCodePaymentNotSettled = "ERR_PAYMENT_NOT_SETTLED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule violations -> 422 Unprocessable Entity
	ErrCodeQuotaExceeded:        http.StatusUnprocessableEntity,
	ErrCodeSubscriptionInactive: http.StatusUnprocessableEntity,
	ErrCodeInvalidGuestCount:    http.StatusUnprocessableEntity,
	ErrCodeTourUnavailable:      http.StatusUnprocessableEntity,
	ErrCodeInvalidState:         http.StatusUnprocessableEntity,
	ErrCodePaymentNotSettled:    http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to the HTTP-facing codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":                ErrCodeNotFound,
	"ALREADY_EXISTS":           ErrCodeAlreadyExists,
	"INVALID_INPUT":            ErrCodeInvalidInput,
	"CONCURRENCY_CONFLICT":     ErrCodeConcurrencyConflict,
	"UNAUTHORIZED":             ErrCodeUnauthorized,
	"FORBIDDEN":                ErrCodeForbidden,
	"QUOTA_EXCEEDED":           ErrCodeQuotaExceeded,
	"SUBSCRIPTION_INACTIVE":    ErrCodeSubscriptionInactive,
	"INVALID_GUEST_COUNT":      ErrCodeInvalidGuestCount,
	"TOUR_UNAVAILABLE":         ErrCodeTourUnavailable,
	"INVALID_STATE_TRANSITION": ErrCodeInvalidState,
	"PAYMENT_NOT_SETTLED":      ErrCodePaymentNotSettled,
}

// NormalizeErrorCode converts a domain error code to the HTTP-facing format.
// Codes already in the HTTP-facing format or unknown are returned as-is.
func NormalizeErrorCode(code string) string {
	if mapped, ok := DomainErrorCodeMapping[code]; ok {
		return mapped
	}
	return code
}
