package handlers

import (
	"net/http"

	"doctorportal/models"
	"doctorportal/services/account"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the doctor roster endpoints.
type DoctorHandler struct {
	Service account.AccountService
}

// NewDoctorHandler creates a DoctorHandler.
func NewDoctorHandler(svc account.AccountService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// ListDoctors handles GET /doctor.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Service.ListDoctors()
	if err != nil {
		utils.GetLogger().Error("Failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list doctors", "")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// AddDoctor handles POST /doctor.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid doctor payload", err.Error())
		return
	}

	result, err := h.Service.AddDoctor(doctor)
	if err != nil {
		utils.GetLogger().Error("Failed to add doctor", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to add doctor", "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// RemoveDoctor handles DELETE /doctor/:email.
func (h *DoctorHandler) RemoveDoctor(c *gin.Context) {
	email := c.Param("email")
	result, err := h.Service.RemoveDoctor(email)
	if err != nil {
		utils.GetLogger().Error("Failed to remove doctor", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to remove doctor", "")
		return
	}
	c.JSON(http.StatusOK, result)
}
