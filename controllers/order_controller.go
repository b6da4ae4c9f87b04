package controllers

import (
	"net/http"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/services"

	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for checkout orders.
type OrderController struct {
	orders services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(svc services.OrderService) *OrderController {
	return &OrderController{orders: svc}
}

// ListOrders handles GET /api/orders
func (oc *OrderController) ListOrders(c *gin.Context) {
	orders, svcErr := oc.orders.ListOrders(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, models.NewOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, gin.H{"orders": responses})
}

// CreateOrder handles POST /api/orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.orders.CreateOrder(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusCreated, models.NewOrderResponse(order))
}

// GetOrder handles GET /api/orders/:id
func (oc *OrderController) GetOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
		return
	}

	order, svcErr := oc.orders.GetOrder(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, models.NewOrderResponse(order))
}

// UpdateOrder handles PATCH /api/orders/:id
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
		return
	}

	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, models.NewOrderResponse(order))
}
