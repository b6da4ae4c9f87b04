package controllers

import (
	"net/http"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/services"

	"github.com/gin-gonic/gin"
)

// TransactionController handles HTTP requests for the gateway audit log.
type TransactionController struct {
	callbacks services.CallbackService
}

// NewTransactionController creates a new TransactionController.
func NewTransactionController(svc services.CallbackService) *TransactionController {
	return &TransactionController{callbacks: svc}
}

// ListTransactions handles GET /api/transactions
func (tc *TransactionController) ListTransactions(c *gin.Context) {
	txns, summary, svcErr := tc.callbacks.ListTransactions(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	responses := make([]models.TransactionResponse, 0, len(txns))
	for i := range txns {
		responses = append(responses, models.NewTransactionResponse(&txns[i]))
	}
	c.JSON(http.StatusOK, gin.H{"transactions": responses, "summary": summary})
}
