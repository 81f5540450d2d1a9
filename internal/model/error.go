package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON    = "INVALID_JSON"
	ErrCodeMissingField   = "MISSING_FIELD"
	ErrCodeInvalidValue   = "INVALID_VALUE"
	ErrCodeNegativeNumber = "NEGATIVE_NUMBER"
	ErrCodeUnknownDay     = "UNKNOWN_DAY"
	ErrCodeEmptyCatalogue = "EMPTY_CATALOGUE"
	ErrCodeUnauthorised   = "UNAUTHORIZED"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

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
	ErrNegativeNumber = NewDomainError(ErrCodeNegativeNumber, "Negative number not allowed")
	ErrUnknownDay     = NewDomainError(ErrCodeUnknownDay, "Day must be one of Monday through Sunday")
	ErrInvalidValue   = NewDomainError(ErrCodeInvalidValue, "Value must carry exactly one of text or number")
	ErrEmptyCatalogue = NewDomainError(ErrCodeEmptyCatalogue, "Catalogue contains no products")
)
