package handlers

import (
	"math"
	"net/http"

	"doctorportal/payments"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment intent creation.
type PaymentHandler struct {
	Gateway payments.IntentCreator
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(gw payments.IntentCreator) *PaymentHandler {
	return &PaymentHandler{Gateway: gw}
}

// CreatePaymentIntent handles POST /create-payment-intent. The price
// arrives in decimal currency units and is converted to minor units for
// the gateway.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment request", err.Error())
		return
	}

	amount := int64(math.Round(req.Price * 100))
	clientSecret, err := h.Gateway.CreateIntent(amount)
	if err != nil {
		utils.GetLogger().Error("Failed to create payment intent", zap.Int64("amount", amount), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create payment intent", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
