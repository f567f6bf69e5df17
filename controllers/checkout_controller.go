package controllers

import (
	"net/http"

	"github.com/StephenRJohns/5JKitchens/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	orders *services.OrderService
}

func NewCheckoutController(orders *services.OrderService) *CheckoutController {
	return &CheckoutController{orders: orders}
}

// Checkout validates the shipping form and records a pending order. No
// payment is processed.
func (cc *CheckoutController) Checkout(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	orderID, fieldErrors, err := cc.orders.Checkout(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order."})
		return
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Please fill in all required fields.",
			"fields": fieldErrors,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "orderId": orderID})
}
