package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ttra33507-star/c4web/config"
	"github.com/ttra33507-star/c4web/controllers"
	"github.com/ttra33507-star/c4web/database"
	"github.com/ttra33507-star/c4web/middleware"
	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/payway"
	"github.com/ttra33507-star/c4web/repository"
	"github.com/ttra33507-star/c4web/routes"
	servicepkg "github.com/ttra33507-star/c4web/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg, logger,
		&models.Service{},
		&models.Order{},
		&models.User{},
		&models.Payment{},
		&models.Transaction{},
		&models.Report{},
	)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db, logger)

	// Gateway client and DI chain
	gateway := payway.NewClient(cfg.Payway)

	serviceRepo := repository.NewGormServiceRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	userRepo := repository.NewGormUserRepository(db)
	paymentRepo := repository.NewGormPaymentRepository(db)
	txnRepo := repository.NewGormTransactionRepository(db)
	reportRepo := repository.NewGormReportRepository(db)

	catalogService := servicepkg.NewCatalogService(serviceRepo, nil, logger)
	userService := servicepkg.NewUserService(userRepo, logger)
	orderService := servicepkg.NewOrderService(orderRepo, serviceRepo, userService, logger)
	paymentService := servicepkg.NewPaymentService(paymentRepo, orderRepo, logger)
	callbackService := servicepkg.NewCallbackService(txnRepo, orderRepo, paymentRepo, logger)
	checkoutService := servicepkg.NewCheckoutService(serviceRepo, orderService, gateway, logger)
	reportService := servicepkg.NewReportService(reportRepo, logger)

	if cfg.SeedCatalog {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := catalogService.EnsureSeedData(seedCtx); err != nil {
			cancel()
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
		cancel()
	}

	catalogController := controllers.NewCatalogController(catalogService)
	orderController := controllers.NewOrderController(orderService)
	userController := controllers.NewUserController(userService)
	paymentController := controllers.NewPaymentController(paymentService, checkoutService)
	reportController := controllers.NewReportController(reportService)
	transactionController := controllers.NewTransactionController(callbackService)
	callbackController := controllers.NewCallbackController(callbackService, logger)
	pagesController := controllers.NewPagesController(catalogService, cfg.SupportContactURL, logger)
	dashboardController := controllers.NewDashboardController(
		catalogService,
		orderService,
		userService,
		paymentService,
		callbackService,
		reportService,
		logger,
	)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterAPIRoutes(r,
		catalogController,
		orderController,
		userController,
		paymentController,
		reportController,
		transactionController,
		callbackController,
	)
	routes.RegisterWebRoutes(r, pagesController, dashboardController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("C4 Hub started", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
