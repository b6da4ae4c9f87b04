package controllers

import (
	"net/http"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/services"

	"github.com/gin-gonic/gin"
)

// PaymentController handles HTTP requests for the payment ledger and the
// hosted-checkout endpoint.
type PaymentController struct {
	payments services.PaymentService
	checkout services.CheckoutService
}

// NewPaymentController creates a new PaymentController.
func NewPaymentController(payments services.PaymentService, checkout services.CheckoutService) *PaymentController {
	return &PaymentController{payments: payments, checkout: checkout}
}

// ListPayments handles GET /api/payments
func (pc *PaymentController) ListPayments(c *gin.Context) {
	payments, summary, svcErr := pc.payments.ListPayments(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments, "summary": summary})
}

// CreatePayment handles POST /api/payments
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	payment, svcErr := pc.payments.RecordPayment(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// PaywayCheckout handles POST /api/payments/aba/checkout. The response
// carries the endpoint and signed payload the browser posts to the gateway.
func (pc *PaymentController) PaywayCheckout(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, svcErr := pc.checkout.CreateCheckout(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"endpoint": result.Session.Endpoint,
		"payload":  result.Session.Payload,
		"orderId":  result.OrderID,
	})
}
