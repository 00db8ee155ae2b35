package handlers

import (
	"net/http"

	"emporia-backend/payment"
	"emporia-backend/utils"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Payments payment.Client
}

// CreateIntent creates a payment intent with the processor and returns its
// client secret. Amount is in the smallest currency unit (e.g. cents).
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req struct {
		Amount   int64  `json:"amount" binding:"required,min=1"`
		Currency string `json:"currency" binding:"required,len=3"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	intent, err := h.Payments.CreateIntent(req.Amount, req.Currency)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, intent)
}
