package error

import "errors"

// Gold domain errors.
var (
	// ErrGoldProviderNotConfigured is returned when a refresh is requested without a price source.
	ErrGoldProviderNotConfigured = errors.New("gold price provider not configured")

	// ErrGoldPriceUnavailable is returned when the price source fails or returns bad data.
	ErrGoldPriceUnavailable = errors.New("gold prices unavailable")
)

// GoldErrorCode defines error codes for gold portfolio errors.
type GoldErrorCode string

const (
	ErrCodeGoldPriceUnavailable      GoldErrorCode = "GLD-010001"
	ErrCodeGoldProviderNotConfigured GoldErrorCode = "GLD-010002"
	ErrCodeInvalidGoldHoldings       GoldErrorCode = "GLD-010003"
)

// GoldError represents a gold portfolio error with code and message.
type GoldError struct {
	Code    GoldErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoldError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoldError) Unwrap() error {
	return e.Err
}

// NewGoldError creates a new GoldError with the given code and message.
func NewGoldError(code GoldErrorCode, message string, err error) *GoldError {
	return &GoldError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
