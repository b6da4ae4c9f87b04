package controllers

import (
	"net/http"
	"strconv"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PagesController renders the public storefront pages.
type PagesController struct {
	catalog    services.CatalogService
	supportURL string
	logger     *zap.Logger
}

// NewPagesController creates a new PagesController.
func NewPagesController(catalog services.CatalogService, supportURL string, logger *zap.Logger) *PagesController {
	return &PagesController{catalog: catalog, supportURL: supportURL, logger: logger}
}

// Home handles GET /
func (pc *PagesController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"active":   "home",
		"services": pc.loadServices(c),
	})
}

// Services handles GET /services
func (pc *PagesController) Services(c *gin.Context) {
	plans, svcErr := pc.catalog.ListPricingPlans(c.Request.Context())
	if svcErr != nil {
		pc.logger.Warn("Failed to load pricing plans for page", zap.String("reason", svcErr.Message))
		plans = []models.PricingPlan{}
	}

	c.HTML(http.StatusOK, "services.html", gin.H{
		"active":   "services",
		"services": pc.loadServices(c),
		"plans":    plans,
	})
}

// Contact handles GET /contact
func (pc *PagesController) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"active":     "contact",
		"supportUrl": pc.supportURL,
	})
}

// OrderService handles GET /service/:id/order, the checkout page for one
// catalog service.
func (pc *PagesController) OrderService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Service not found"})
		return
	}

	service, svcErr := pc.catalog.GetService(c.Request.Context(), uint(id))
	if svcErr != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Service not found"})
		return
	}

	c.HTML(http.StatusOK, "payment.html", gin.H{
		"active":    "services",
		"service":   models.NewServiceResponse(service),
		"serviceId": service.ID,
	})
}

// PaymentConfirm handles GET /payment/confirm, the landing page the gateway
// redirects the customer back to.
func (pc *PagesController) PaymentConfirm(c *gin.Context) {
	c.HTML(http.StatusOK, "payment_success.html", gin.H{
		"orderId": c.Query("orderId"),
		"tranId":  c.Query("tranId"),
	})
}

func (pc *PagesController) loadServices(c *gin.Context) []models.ServiceResponse {
	items, svcErr := pc.catalog.ListServices(c.Request.Context())
	if svcErr != nil {
		pc.logger.Warn("Failed to load catalog for page", zap.String("reason", svcErr.Message))
		return []models.ServiceResponse{}
	}

	responses := make([]models.ServiceResponse, 0, len(items))
	for i := range items {
		responses = append(responses, models.NewServiceResponse(&items[i]))
	}
	return responses
}
