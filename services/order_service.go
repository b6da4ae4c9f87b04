package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderService defines the interface for order business logic.
type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError)
	ListOrders(ctx context.Context) ([]models.Order, *ServiceError)
	GetOrder(ctx context.Context, id string) (*models.Order, *ServiceError)
	UpdateStatus(ctx context.Context, id, status string) (*models.Order, *ServiceError)
	UpdateCustomer(ctx context.Context, id string, customer map[string]any) (*models.Order, *ServiceError)
}

type orderServiceImpl struct {
	repo        repository.OrderRepository
	serviceRepo repository.ServiceRepository
	users       UserService
	logger      *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	repo repository.OrderRepository,
	serviceRepo repository.ServiceRepository,
	users UserService,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		repo:        repo,
		serviceRepo: serviceRepo,
		users:       users,
		logger:      logger,
	}
}

// CreateOrder creates an order for a catalog service. When the customer
// object carries an email, the matching user is created or fetched and its
// id stamped into the order's customer details.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError) {
	service, err := s.serviceRepo.FindByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Selected service is not available"}
		}
		s.logger.Error("Failed to load service for order", zap.Uint("service_id", req.ServiceID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
	}

	customer := req.Customer
	if customer == nil {
		customer = map[string]any{}
	}

	if email := models.CustomerEmail(customer); email != "" {
		userReq := &models.CreateUserRequest{
			FullName: models.NormalizeCustomerName(customer),
			Email:    email,
		}
		if phone, ok := customer["phone"].(string); ok {
			userReq.Phone = phone
		}
		if company, ok := customer["company"].(string); ok {
			userReq.Company = company
		}
		if user, svcErr := s.users.CreateUser(ctx, userReq); svcErr != nil {
			s.logger.Warn("Failed to register customer for order", zap.String("email", email), zap.String("reason", svcErr.Message))
		} else {
			customer["userId"] = user.ID
		}
	}

	quantity := coerceQuantity(req.Quantity)
	order := &models.Order{
		ID:           newOrderID(),
		ServiceID:    service.ID,
		Service:      service,
		UnitPrice:    service.Price,
		Quantity:     quantity,
		Amount:       service.Price * float64(quantity),
		CustomerName: models.NormalizeCustomerName(customer),
		Status:       models.OrderStatusPending,
	}
	if len(customer) > 0 {
		raw, err := json.Marshal(customer)
		if err != nil {
			s.logger.Error("Failed to encode customer details", zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
		}
		order.CustomerDetails = datatypes.JSON(raw)
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to persist order", zap.String("order_id", order.ID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.Uint("service_id", service.ID),
		zap.Float64("amount", order.Amount),
	)
	return order, nil
}

// ListOrders returns orders ordered by recency.
func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list orders"}
	}
	return orders, nil
}

// GetOrder retrieves a stored order.
func (s *orderServiceImpl) GetOrder(ctx context.Context, id string) (*models.Order, *ServiceError) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to load order", zap.String("order_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load order"}
	}
	return order, nil
}

// UpdateStatus mutates an order's status within the allowed set.
func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*models.Order, *ServiceError) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if !models.IsValidOrderStatus(normalized) {
		return nil, &ServiceError{
			StatusCode: 400,
			Message:    fmt.Sprintf("`status` must be one of %s", models.AllowedOrderStatusList()),
		}
	}

	if err := s.repo.UpdateStatus(ctx, id, normalized); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to update order status", zap.String("order_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}

	return s.GetOrder(ctx, id)
}

// UpdateCustomer replaces an order's customer details, refreshing the
// denormalized customer name.
func (s *orderServiceImpl) UpdateCustomer(ctx context.Context, id string, customer map[string]any) (*models.Order, *ServiceError) {
	order, svcErr := s.GetOrder(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	if len(customer) == 0 {
		return order, nil
	}

	raw, err := json.Marshal(customer)
	if err != nil {
		s.logger.Error("Failed to encode customer details", zap.String("order_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}
	order.CustomerDetails = datatypes.JSON(raw)
	order.CustomerName = models.NormalizeCustomerName(customer)

	if err := s.repo.Update(ctx, order); err != nil {
		s.logger.Error("Failed to update order customer", zap.String("order_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}
	return order, nil
}

// coerceQuantity clamps a requested quantity to at least one.
func coerceQuantity(q int) int {
	if q <= 0 {
		return 1
	}
	return q
}

// newOrderID builds an order id from the current UTC timestamp plus a
// random suffix, so ids stay unique across restarts without any in-process
// counter.
func newOrderID() string {
	return fmt.Sprintf("ORDER-%s-%s",
		time.Now().UTC().Format("20060102150405"),
		uuid.NewString()[:8],
	)
}
