package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/cospharm-api/internal/application/service"
	"github.com/sangkips/cospharm-api/internal/presentation/http/dto/response"
)

// BulkUploadHandler accepts price files
type BulkUploadHandler struct {
	bulkService *service.BulkUploadService
	maxSize     int64
}

// NewBulkUploadHandler creates a new bulk upload handler. Files larger than
// maxSize bytes are rejected.
func NewBulkUploadHandler(bulkService *service.BulkUploadService, maxSize int64) *BulkUploadHandler {
	return &BulkUploadHandler{bulkService: bulkService, maxSize: maxSize}
}

// Upload processes a multipart "file" field
func (h *BulkUploadHandler) Upload(c *gin.Context) {
	if h.maxSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "A file is required in the 'file' form field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Uploaded file could not be opened")
		return
	}
	defer file.Close()

	uploadedBy := ""
	if id := actor(c); id != nil {
		uploadedBy = *id
	}

	result, err := h.bulkService.ProcessFile(c.Request.Context(), fileHeader.Filename, uploadedBy, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bulk upload processed", result)
}

// List returns recent uploads
func (h *BulkUploadHandler) List(c *gin.Context) {
	uploads, err := h.bulkService.ListUploads(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bulk uploads retrieved successfully", uploads)
}
