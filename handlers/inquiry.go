package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"venuebook/models"
	"venuebook/services/inquiry"
	"venuebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InquiryHandler serves the inquiry widget and dashboard endpoints.
type InquiryHandler struct {
	Service inquiry.InquiryService
	Logger  *zap.Logger
}

// NewInquiryHandler creates a new InquiryHandler instance.
func NewInquiryHandler(svc inquiry.InquiryService, logger *zap.Logger) *InquiryHandler {
	return &InquiryHandler{Service: svc, Logger: logger}
}

// CreateInquiry handles POST /api/inquiries.
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var input models.InquiryCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid inquiry payload: "+err.Error())
		return
	}

	id, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, inquiry.ErrBadDate) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("Error creating inquiry", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create inquiry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"inquiryId": id,
		"message":   "Inquiry submitted successfully",
	})
}

// ListInquiries handles GET /api/inquiries.
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	inquiries, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("Error fetching inquiries", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch inquiries")
		return
	}
	if inquiries == nil {
		inquiries = []models.Inquiry{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "inquiries": inquiries})
}

// PatchInquiry handles PATCH /api/inquiries: the host status transition,
// optionally carrying host notes and/or a counter-offer.
func (h *InquiryHandler) PatchInquiry(c *gin.Context) {
	var input models.InquiryPatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid patch payload: "+err.Error())
		return
	}
	if input.InquiryID == "" || input.Status == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing inquiryId or status")
		return
	}

	if err := h.Service.Patch(c.Request.Context(), input); err != nil {
		switch {
		case errors.Is(err, inquiry.ErrInvalidID):
			utils.JSONError(c, http.StatusBadRequest, "Invalid inquiry ID")
		case errors.Is(err, inquiry.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "Invalid inquiry status")
		case errors.Is(err, inquiry.ErrBadDate):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, inquiry.ErrInvalidTransition):
			utils.JSONError(c, http.StatusConflict, err.Error())
		case errors.Is(err, inquiry.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Inquiry not found")
		default:
			h.Logger.Error("Error updating inquiry", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update inquiry")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Inquiry %s successfully", input.Status),
	})
}
