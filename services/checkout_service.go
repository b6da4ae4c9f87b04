package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/payway"
	"github.com/ttra33507-star/c4web/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CheckoutRequest asks for a hosted-checkout payload. When OrderID is set
// the existing order is reused; otherwise a new order is created for the
// service.
type CheckoutRequest struct {
	ServiceID uint           `json:"serviceId" binding:"required"`
	OrderID   *string        `json:"orderId"`
	Quantity  int            `json:"quantity"`
	Customer  map[string]any `json:"customer"`
}

// CheckoutResult bundles the signed gateway payload with the order it pays
// for.
type CheckoutResult struct {
	Session *payway.CheckoutSession
	OrderID string
}

// CheckoutService builds signed ABA PayWay hosted-checkout payloads.
type CheckoutService interface {
	CreateCheckout(ctx context.Context, req *CheckoutRequest) (*CheckoutResult, *ServiceError)
}

type checkoutServiceImpl struct {
	serviceRepo repository.ServiceRepository
	orders      OrderService
	gateway     payway.Gateway
	logger      *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	serviceRepo repository.ServiceRepository,
	orders OrderService,
	gateway payway.Gateway,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		serviceRepo: serviceRepo,
		orders:      orders,
		gateway:     gateway,
		logger:      logger,
	}
}

// CreateCheckout resolves the order to pay for, refreshes its customer
// details, and returns the signed hosted-checkout payload. Gateway
// misconfiguration surfaces as 502.
func (s *checkoutServiceImpl) CreateCheckout(ctx context.Context, req *CheckoutRequest) (*CheckoutResult, *ServiceError) {
	service, err := s.serviceRepo.FindByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Selected service is not available"}
		}
		s.logger.Error("Failed to load service for checkout", zap.Uint("service_id", req.ServiceID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create checkout"}
	}

	var order *models.Order
	var svcErr *ServiceError
	if req.OrderID != nil {
		if strings.TrimSpace(*req.OrderID) == "" {
			return nil, &ServiceError{StatusCode: 400, Message: "`orderId` must be a non-empty string when provided"}
		}
		order, svcErr = s.orders.GetOrder(ctx, *req.OrderID)
		if svcErr != nil {
			if svcErr.StatusCode == 404 {
				return nil, &ServiceError{StatusCode: 404, Message: "Referenced order could not be found"}
			}
			return nil, svcErr
		}
	} else {
		order, svcErr = s.orders.CreateOrder(ctx, &models.CreateOrderRequest{
			ServiceID: req.ServiceID,
			Quantity:  req.Quantity,
			Customer:  req.Customer,
		})
		if svcErr != nil {
			return nil, svcErr
		}
	}

	if len(req.Customer) > 0 {
		updated, svcErr := s.orders.UpdateCustomer(ctx, order.ID, req.Customer)
		if svcErr != nil {
			return nil, svcErr
		}
		order = updated
	}

	session, err := s.gateway.CreateCheckout(payway.CheckoutRequest{
		OrderID:  order.ID,
		Amount:   formatAmount(order.Amount),
		Items:    service.Name,
		Customer: req.Customer,
	})
	if err != nil {
		s.logger.Error("PayWay checkout failed",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: 502, Message: err.Error()}
	}

	s.logger.Info("Checkout payload created",
		zap.String("order_id", order.ID),
		zap.String("amount", session.Payload["amount"]),
	)
	return &CheckoutResult{Session: session, OrderID: order.ID}, nil
}
