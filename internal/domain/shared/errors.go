package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
)

// Error codes for booking and subscription rule violations.
// Handlers map these to HTTP statuses; the presentation layer derives
// user-facing copy ("Sold out", "Please complete payment first") from the code.
const (
	CodeQuotaExceeded          = "QUOTA_EXCEEDED"
	CodeSubscriptionInactive   = "SUBSCRIPTION_INACTIVE"
	CodeInvalidGuestCount      = "INVALID_GUEST_COUNT"
	CodeTourUnavailable        = "TOUR_UNAVAILABLE"
	CodeInvalidStateTransition = "INVALID_STATE_TRANSITION"
	CodePaymentNotSettled      = "PAYMENT_NOT_SETTLED"
)
