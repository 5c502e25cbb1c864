package handlers

import (
	"errors"
	"net/http"

	"venuebook/services/verification"
	"venuebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VerificationHandler serves the booking widget's phone verification step.
type VerificationHandler struct {
	Service verification.VerificationService
	Logger  *zap.Logger
}

// NewVerificationHandler creates a new VerificationHandler instance.
func NewVerificationHandler(svc verification.VerificationService, logger *zap.Logger) *VerificationHandler {
	return &VerificationHandler{Service: svc, Logger: logger}
}

// SendCode handles POST /api/verification/send.
func (h *VerificationHandler) SendCode(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Phone number is required")
		return
	}

	if err := h.Service.SendCode(c.Request.Context(), input.Phone); err != nil {
		h.Logger.Error("Error sending verification code", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send verification code")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Verification code sent"})
}

// VerifyCode handles POST /api/verification/verify.
func (h *VerificationHandler) VerifyCode(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Phone number and code are required")
		return
	}

	if err := h.Service.VerifyCode(c.Request.Context(), input.Phone, input.Code); err != nil {
		switch {
		case errors.Is(err, verification.ErrCodeNotFound), errors.Is(err, verification.ErrCodeMismatch):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			h.Logger.Error("Error verifying code", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to verify code")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "verified": true})
}
