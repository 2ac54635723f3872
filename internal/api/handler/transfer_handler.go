package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KKK-90/POSTRKR-App/internal/api/middleware"
	"github.com/KKK-90/POSTRKR-App/internal/service"
	"github.com/KKK-90/POSTRKR-App/pkg/response"
)

// uploadField is the multipart field carrying import and restore files.
const uploadField = "file"

// TransferHandler bulk import/export and backup/restore endpoints.
type TransferHandler struct {
	transferSvc service.TransferService
}

// NewTransferHandler creates a TransferHandler.
func NewTransferHandler(transferSvc service.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

// Import replaces all records from an uploaded xlsx.
// POST /api/import
func (h *TransferHandler) Import(c *gin.Context) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		h.handleUploadError(c, err, service.ErrImportNoFile)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	result, err := h.transferSvc.Import(c.Request.Context(), f)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, result)
}

// Export downloads all records as xlsx.
// GET /api/export
func (h *TransferHandler) Export(c *gin.Context) {
	file, err := h.transferSvc.Export(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}

// Backup downloads all records as JSON.
// GET /api/backup
func (h *TransferHandler) Backup(c *gin.Context) {
	file, err := h.transferSvc.Backup(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}

// Restore replaces all records from an uploaded JSON backup.
// POST /api/restore
func (h *TransferHandler) Restore(c *gin.Context) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		h.handleUploadError(c, err, service.ErrRestoreNoFile)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	result, err := h.transferSvc.Restore(c.Request.Context(), f)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *TransferHandler) handleUploadError(c *gin.Context, err, missing error) {
	if middleware.IsBodyTooLarge(err) {
		response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	handleServiceError(c, missing)
}
