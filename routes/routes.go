package routes

import (
	"net/http"

	"github.com/ttra33507-star/c4web/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes sets up the JSON API and the gateway callback endpoint.
func RegisterAPIRoutes(
	r *gin.Engine,
	catalog *controllers.CatalogController,
	orders *controllers.OrderController,
	users *controllers.UserController,
	payments *controllers.PaymentController,
	reports *controllers.ReportController,
	transactions *controllers.TransactionController,
	callback *controllers.CallbackController,
) {
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.GET("/services", catalog.ListServices)
	api.GET("/services/:id", catalog.GetService)
	api.GET("/licenses", catalog.ListLicenses)

	api.GET("/orders", orders.ListOrders)
	api.POST("/orders", orders.CreateOrder)
	api.GET("/orders/:id", orders.GetOrder)
	api.PATCH("/orders/:id", orders.UpdateOrder)

	api.GET("/users", users.ListUsers)
	api.POST("/users", users.CreateUser)

	api.GET("/payments", payments.ListPayments)
	api.POST("/payments", payments.CreatePayment)
	api.POST("/payments/aba/checkout", payments.PaywayCheckout)

	api.GET("/reports", reports.ListReports)
	api.POST("/reports", reports.CreateReport)
	api.PATCH("/reports/:id", reports.UpdateReport)

	api.GET("/transactions", transactions.ListTransactions)

	// The gateway posts the pushback outside /api; the path is part of the
	// PayWay merchant profile and cannot change.
	r.POST("/payment/success", callback.PaymentSuccess)
}

// RegisterWebRoutes sets up the rendered storefront and dashboard pages.
func RegisterWebRoutes(r *gin.Engine, pages *controllers.PagesController, dashboard *controllers.DashboardController) {
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	r.GET("/", pages.Home)
	r.GET("/services", pages.Services)
	r.GET("/contact", pages.Contact)
	r.GET("/service/:id/order", pages.OrderService)
	r.GET("/payment/confirm", pages.PaymentConfirm)

	dash := r.Group("/dashboard")
	dash.GET("", dashboard.Overview)
	dash.GET("/order", dashboard.Orders)
	dash.GET("/transactions", dashboard.Transactions)
	dash.GET("/license_keys", dashboard.LicenseKeys)
	dash.GET("/users", dashboard.Users)
	dash.GET("/payments", dashboard.Payments)
	dash.GET("/reports", dashboard.Reports)
}
