package controllers

import (
	"net/http"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardController renders the staff back-office pages. Every read
// degrades to an empty list on failure so the dashboard always renders;
// internal error detail stays in the logs.
type DashboardController struct {
	catalog   services.CatalogService
	orders    services.OrderService
	users     services.UserService
	payments  services.PaymentService
	callbacks services.CallbackService
	reports   services.ReportService
	logger    *zap.Logger
}

// NewDashboardController creates a new DashboardController.
func NewDashboardController(
	catalog services.CatalogService,
	orders services.OrderService,
	users services.UserService,
	payments services.PaymentService,
	callbacks services.CallbackService,
	reports services.ReportService,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		catalog:   catalog,
		orders:    orders,
		users:     users,
		payments:  payments,
		callbacks: callbacks,
		reports:   reports,
		logger:    logger,
	}
}

// Overview handles GET /dashboard
func (dc *DashboardController) Overview(c *gin.Context) {
	orders := dc.loadOrders(c)
	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}

	c.HTML(http.StatusOK, "dashboard_index.html", gin.H{
		"active":     "overview",
		"licenses":   dc.catalog.ListLicenses(c.Request.Context()),
		"orders":     recent,
		"orderCount": len(orders),
		"history":    dc.loadHistory(c),
	})
}

// Orders handles GET /dashboard/order
func (dc *DashboardController) Orders(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard_orders.html", gin.H{
		"active": "orders",
		"orders": dc.loadOrders(c),
	})
}

// Transactions handles GET /dashboard/transactions
func (dc *DashboardController) Transactions(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard_transactions.html", gin.H{
		"active":  "transactions",
		"history": dc.loadHistory(c),
	})
}

// LicenseKeys handles GET /dashboard/license_keys
func (dc *DashboardController) LicenseKeys(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard_licenses.html", gin.H{
		"active":   "licenses",
		"licenses": dc.catalog.ListLicenses(c.Request.Context()),
	})
}

// Users handles GET /dashboard/users
func (dc *DashboardController) Users(c *gin.Context) {
	users, svcErr := dc.users.ListUsers(c.Request.Context())
	if svcErr != nil {
		dc.logger.Warn("Failed to load users for dashboard", zap.String("reason", svcErr.Message))
		users = []models.User{}
	}

	c.HTML(http.StatusOK, "dashboard_users.html", gin.H{
		"active": "users",
		"users":  users,
	})
}

// Payments handles GET /dashboard/payments
func (dc *DashboardController) Payments(c *gin.Context) {
	payments, summary, svcErr := dc.payments.ListPayments(c.Request.Context())
	if svcErr != nil {
		dc.logger.Warn("Failed to load payments for dashboard", zap.String("reason", svcErr.Message))
		payments = []models.Payment{}
		summary = &models.LedgerSummary{}
	}

	c.HTML(http.StatusOK, "dashboard_payments.html", gin.H{
		"active":   "payments",
		"payments": payments,
		"summary":  summary,
	})
}

// Reports handles GET /dashboard/reports
func (dc *DashboardController) Reports(c *gin.Context) {
	reports, svcErr := dc.reports.ListReports(c.Request.Context())
	if svcErr != nil {
		dc.logger.Warn("Failed to load reports for dashboard", zap.String("reason", svcErr.Message))
		reports = []models.Report{}
	}

	c.HTML(http.StatusOK, "dashboard_reports.html", gin.H{
		"active":  "reports",
		"reports": reports,
	})
}

func (dc *DashboardController) loadOrders(c *gin.Context) []models.OrderResponse {
	orders, svcErr := dc.orders.ListOrders(c.Request.Context())
	if svcErr != nil {
		dc.logger.Warn("Failed to load orders for dashboard", zap.String("reason", svcErr.Message))
		return []models.OrderResponse{}
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, models.NewOrderResponse(&orders[i]))
	}
	return responses
}

// loadHistory mirrors the transaction ledger block the dashboard tables
// render: the rows plus count and running total.
func (dc *DashboardController) loadHistory(c *gin.Context) gin.H {
	txns, summary, svcErr := dc.callbacks.ListTransactions(c.Request.Context())
	if svcErr != nil {
		dc.logger.Warn("Failed to load transactions for dashboard", zap.String("reason", svcErr.Message))
		return gin.H{"transactions": []models.TransactionResponse{}, "count": 0, "totalAmount": 0.0}
	}

	responses := make([]models.TransactionResponse, 0, len(txns))
	for i := range txns {
		responses = append(responses, models.NewTransactionResponse(&txns[i]))
	}
	return gin.H{
		"transactions": responses,
		"count":        summary.Count,
		"totalAmount":  summary.TotalAmount,
	}
}
