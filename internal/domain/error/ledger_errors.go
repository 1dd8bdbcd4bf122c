// Package error defines domain-specific errors for the budget ledger.
package error

import (
	"errors"
	"fmt"
)

// Ledger domain errors.
var (
	// ErrEntryNotFound is returned when an update or delete targets an unknown id.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidInput is returned when an entity fails field validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrArithmeticInconsistency is returned when amounts cannot be derived
	// consistently, such as an installment plan with zero installments.
	ErrArithmeticInconsistency = errors.New("arithmetic inconsistency")

	// ErrEntryLocked is returned when an update or delete targets a
	// credit-card entry that belongs to a closed period or was generated
	// from an installment plan.
	ErrEntryLocked = errors.New("entry is locked")

	// ErrRolloverFailed is returned when a period cannot be closed.
	ErrRolloverFailed = errors.New("rollover failed")

	// ErrSnapshotNotFound is returned by the snapshot repository when no ledger was saved yet.
	ErrSnapshotNotFound = errors.New("ledger snapshot not found")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Entry errors (01XXXX)
	ErrCodeEntryNotFound           LedgerErrorCode = "LDG-010001"
	ErrCodeInvalidInput            LedgerErrorCode = "LDG-010002"
	ErrCodeArithmeticInconsistency LedgerErrorCode = "LDG-010003"
	ErrCodeEntryLocked             LedgerErrorCode = "LDG-010004"

	// Period errors (02XXXX)
	ErrCodeRolloverFailed LedgerErrorCode = "LDG-020001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewNotFoundError creates the soft failure returned for an unknown id.
func NewNotFoundError(kind, id string) *LedgerError {
	return NewLedgerError(
		ErrCodeEntryNotFound,
		fmt.Sprintf("%s %q not found", kind, id),
		ErrEntryNotFound,
	)
}

// NewArithmeticError creates an arithmetic inconsistency error.
func NewArithmeticError(message string) *LedgerError {
	return NewLedgerError(ErrCodeArithmeticInconsistency, message, ErrArithmeticInconsistency)
}

// NewEntryLockedError creates the error returned when a committed entry
// cannot be changed.
func NewEntryLockedError(kind, id, reason string) *LedgerError {
	return NewLedgerError(
		ErrCodeEntryLocked,
		fmt.Sprintf("%s %q cannot be changed: %s", kind, id, reason),
		ErrEntryLocked,
	)
}
