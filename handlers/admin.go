package handlers

import (
	"net/http"
	"time"

	"venuebook/config"
	"venuebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenDuration = 24 * time.Hour

// AdminHandler serves the operator dashboard login.
type AdminHandler struct {
	Logger *zap.Logger
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Logger: logger}
}

// Login handles POST /api/admin/login. The supplied key is compared
// against the configured bcrypt hash; a match yields a short-lived token
// for the guarded dashboard endpoints.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Admin key is required")
		return
	}

	hash := config.AppConfig.AdminKeyHash
	if hash == "" {
		utils.JSONError(c, http.StatusNotFound, "Admin auth is not configured")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Key)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	token, err := utils.GenerateToken("admin", adminTokenDuration)
	if err != nil {
		h.Logger.Error("Error generating admin token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
