package controllers

import (
	"net/http"

	"github.com/ttra33507-star/c4web/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CallbackController receives server-to-server payment callbacks from ABA
// PayWay.
type CallbackController struct {
	callbacks services.CallbackService
	logger    *zap.Logger
}

// NewCallbackController creates a new CallbackController.
func NewCallbackController(svc services.CallbackService, logger *zap.Logger) *CallbackController {
	return &CallbackController{callbacks: svc, logger: logger}
}

// PaymentSuccess handles POST /payment/success. The gateway posts
// form-encoded fields by default; JSON bodies are accepted too. Query
// parameters are folded in because the gateway appends them to the
// pushback URL on some integrations.
func (cc *CallbackController) PaymentSuccess(c *gin.Context) {
	payload := map[string]any{}

	if c.ContentType() == "application/json" {
		if err := c.ShouldBindJSON(&payload); err != nil {
			cc.logger.Warn("Unreadable callback body", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid callback payload", "details": err.Error()})
			return
		}
	} else {
		if err := c.Request.ParseForm(); err != nil {
			cc.logger.Warn("Unreadable callback form", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid callback payload"})
			return
		}
		// Form merges the URL query with the POST body.
		for key, values := range c.Request.Form {
			if len(values) > 0 {
				payload[key] = values[0]
			}
		}
	}

	txn, svcErr := cc.callbacks.Ingest(c.Request.Context(), payload)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "received", "tranId": txn.TranID})
}
