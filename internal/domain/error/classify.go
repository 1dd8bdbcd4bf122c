package error

import "errors"

// IsDomainError reports whether err is an expected, input-driven failure
// rather than an environmental one.
func IsDomainError(err error) bool {
	var (
		ledgerErr     *LedgerError
		backupErr     *BackupError
		goldErr       *GoldError
		validationErr *ValidationError
	)
	return errors.As(err, &ledgerErr) ||
		errors.As(err, &backupErr) ||
		errors.As(err, &goldErr) ||
		errors.As(err, &validationErr)
}
