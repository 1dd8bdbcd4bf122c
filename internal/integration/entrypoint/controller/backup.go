package controller

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/snapshot"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

const (
	// maxUploadBytes bounds uploaded backups.
	maxUploadBytes = 10 << 20

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// BackupController handles backup export and import endpoints.
type BackupController struct {
	exportSnapshotUseCase *snapshot.ExportSnapshotUseCase
	importSnapshotUseCase *snapshot.ImportSnapshotUseCase
	exportWorkbookUseCase *snapshot.ExportWorkbookUseCase
	importWorkbookUseCase *snapshot.ImportWorkbookUseCase
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	exportSnapshotUseCase *snapshot.ExportSnapshotUseCase,
	importSnapshotUseCase *snapshot.ImportSnapshotUseCase,
	exportWorkbookUseCase *snapshot.ExportWorkbookUseCase,
	importWorkbookUseCase *snapshot.ImportWorkbookUseCase,
) *BackupController {
	return &BackupController{
		exportSnapshotUseCase: exportSnapshotUseCase,
		importSnapshotUseCase: importSnapshotUseCase,
		exportWorkbookUseCase: exportWorkbookUseCase,
		importWorkbookUseCase: importWorkbookUseCase,
	}
}

// Export handles GET /backup/export requests.
func (c *BackupController) Export(ctx *gin.Context) {
	output, err := c.exportSnapshotUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	attachment(ctx, output.Filename)
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", output.Data)
}

// Import handles POST /backup/import?confirm=true requests.
// The document is read from the "file" form field or the raw body.
func (c *BackupController) Import(ctx *gin.Context) {
	data, ok := readUpload(ctx)
	if !ok {
		return
	}

	output, err := c.importSnapshotUseCase.Execute(ctx.Request.Context(), snapshot.ImportSnapshotInput{
		Data:    data,
		Confirm: confirmed(ctx),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportResponse(output))
}

// ExportWorkbook handles GET /backup/workbook requests.
func (c *BackupController) ExportWorkbook(ctx *gin.Context) {
	output, err := c.exportWorkbookUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	attachment(ctx, output.Filename)
	ctx.Data(http.StatusOK, xlsxContentType, output.Data)
}

// ImportWorkbook handles POST /backup/workbook?confirm=true requests.
func (c *BackupController) ImportWorkbook(ctx *gin.Context) {
	data, ok := readUpload(ctx)
	if !ok {
		return
	}

	output, err := c.importWorkbookUseCase.Execute(ctx.Request.Context(), snapshot.ImportWorkbookInput{
		File:    bytes.NewReader(data),
		Confirm: confirmed(ctx),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportResponse(output))
}

func confirmed(ctx *gin.Context) bool {
	ok, err := strconv.ParseBool(ctx.Query("confirm"))
	return err == nil && ok
}

func attachment(ctx *gin.Context, filename string) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

// readUpload returns the uploaded file, or writes an error response.
func readUpload(ctx *gin.Context) ([]byte, bool) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxUploadBytes)

	var (
		reader io.Reader = ctx.Request.Body
		closer io.Closer
	)
	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		file, _, err := ctx.Request.FormFile("file")
		if err != nil {
			uploadError(ctx, "Missing file field: "+err.Error())
			return nil, false
		}
		reader, closer = file, file
	}
	if closer != nil {
		defer closer.Close()
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		uploadError(ctx, "Failed to read upload: "+err.Error())
		return nil, false
	}
	if len(data) == 0 {
		uploadError(ctx, "Empty upload")
		return nil, false
	}
	return data, true
}

func uploadError(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeInvalidSnapshot),
	})
}
