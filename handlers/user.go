package handlers

import (
	"net/http"

	"doctorportal/services/account"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the user account endpoints.
type UserHandler struct {
	Service account.AccountService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc account.AccountService) *UserHandler {
	return &UserHandler{Service: svc}
}

// ListUsers handles GET /user: all user documents, role included.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Service.ListUsers()
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list users", "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpsertUser handles PUT /user/:email: replaces or creates the profile
// and returns the write result with a fresh token.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var profile map[string]interface{}
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user payload", err.Error())
		return
	}

	result, err := h.Service.UpsertUser(email, profile)
	if err != nil {
		utils.GetLogger().Error("Failed to upsert user", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save user", "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// PromoteAdmin handles PUT /user/admin/:email.
func (h *UserHandler) PromoteAdmin(c *gin.Context) {
	email := c.Param("email")
	result, err := h.Service.PromoteAdmin(email)
	if err != nil {
		utils.GetLogger().Error("Failed to promote user", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to promote user", "")
		return
	}
	c.JSON(http.StatusOK, result)
}
