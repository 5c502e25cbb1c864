package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"venuebook/services/storage"
	"venuebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const attachmentFolder = "inquiries/attachments"

// AttachmentHandler handles inquiry attachment uploads.
type AttachmentHandler struct {
	StorageSvc storage.StorageService
	Logger     *zap.Logger
}

// NewAttachmentHandler creates a new AttachmentHandler instance.
func NewAttachmentHandler(svc storage.StorageService, logger *zap.Logger) *AttachmentHandler {
	return &AttachmentHandler{StorageSvc: svc, Logger: logger}
}

// UploadAttachment handles POST /api/inquiries/attachments.
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File not provided")
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		h.Logger.Error("Error saving uploaded file", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save file")
		return
	}
	defer os.Remove(tempFilePath)

	url, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, attachmentFolder)
	if err != nil {
		h.Logger.Error("Error uploading attachment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload attachment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "attachmentUrl": url})
}
