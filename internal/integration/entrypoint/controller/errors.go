package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// handleLedgerError maps domain errors to HTTP responses.
func handleLedgerError(ctx *gin.Context, err error) {
	var (
		validationErr *domainerror.ValidationError
		ledgerErr     *domainerror.LedgerError
		backupErr     *domainerror.BackupError
		goldErr       *domainerror.GoldError
	)

	switch {
	case errors.As(err, &validationErr):
		fields := make([]dto.FieldErrorResponse, len(validationErr.Fields))
		for i, f := range validationErr.Fields {
			fields[i] = dto.FieldErrorResponse{Field: f.Field, Reason: f.Reason}
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "Validation failed",
			Code:   validationErr.Code,
			Fields: fields,
		})
	case errors.As(err, &ledgerErr):
		ctx.JSON(getStatusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
	case errors.As(err, &backupErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: backupErr.Message,
			Code:  string(backupErr.Code),
		})
	case errors.As(err, &goldErr):
		ctx.JSON(getStatusCodeForGoldError(goldErr.Code), dto.ErrorResponse{
			Error: goldErr.Message,
			Code:  string(goldErr.Code),
		})
	default:
		slog.Error("Unhandled error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
func getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case domainerror.ErrCodeArithmeticInconsistency:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeEntryLocked, domainerror.ErrCodeRolloverFailed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForGoldError maps gold error codes to HTTP status codes.
func getStatusCodeForGoldError(code domainerror.GoldErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoldPriceUnavailable:
		return http.StatusBadGateway
	case domainerror.ErrCodeGoldProviderNotConfigured:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeInvalidGoldHoldings:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func bindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
		Code:  string(domainerror.ErrCodeInvalidInput),
	})
}
