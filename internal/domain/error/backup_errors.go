package error

import "errors"

// Backup domain errors.
var (
	// ErrImportNotConfirmed is returned when an import is attempted without explicit confirmation.
	ErrImportNotConfirmed = errors.New("import requires confirmation")

	// ErrUnreadableWorkbook is returned when an uploaded workbook cannot be opened.
	ErrUnreadableWorkbook = errors.New("unreadable workbook")
)

// BackupErrorCode defines error codes for backup errors.
type BackupErrorCode string

const (
	ErrCodeInvalidSnapshot    BackupErrorCode = "BKP-010001"
	ErrCodeImportNotConfirmed BackupErrorCode = "BKP-010002"
	ErrCodeUnreadableWorkbook BackupErrorCode = "BKP-010003"
	ErrCodeImportRateLimited  BackupErrorCode = "BKP-020001"
)

// BackupError represents a backup error with code and message.
type BackupError struct {
	Code    BackupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BackupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BackupError) Unwrap() error {
	return e.Err
}

// NewBackupError creates a new BackupError with the given code and message.
func NewBackupError(code BackupErrorCode, message string, err error) *BackupError {
	return &BackupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
