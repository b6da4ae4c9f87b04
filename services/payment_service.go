package services

import (
	"context"
	"errors"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PaymentService defines the interface for payment-ledger business logic.
type PaymentService interface {
	ListPayments(ctx context.Context) ([]models.Payment, *models.LedgerSummary, *ServiceError)
	RecordPayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, *ServiceError)
}

type paymentServiceImpl struct {
	repo      repository.PaymentRepository
	orderRepo repository.OrderRepository
	logger    *zap.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	repo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	logger *zap.Logger,
) PaymentService {
	return &paymentServiceImpl{repo: repo, orderRepo: orderRepo, logger: logger}
}

// ListPayments returns ledger entries ordered by recency plus an aggregate
// summary.
func (s *paymentServiceImpl) ListPayments(ctx context.Context) ([]models.Payment, *models.LedgerSummary, *ServiceError) {
	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list payments", zap.Error(err))
		return nil, nil, &ServiceError{StatusCode: 500, Message: "Failed to list payments"}
	}
	summary, err := s.repo.Summary(ctx)
	if err != nil {
		s.logger.Error("Failed to summarize payments", zap.Error(err))
		return nil, nil, &ServiceError{StatusCode: 500, Message: "Failed to list payments"}
	}
	return payments, summary, nil
}

// RecordPayment writes a ledger entry for an existing order. A request
// carrying a gateway reference is routed through the idempotent upsert, so
// re-submitting the same reference updates the existing row instead of
// duplicating it.
func (s *paymentServiceImpl) RecordPayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, *ServiceError) {
	if _, err := s.orderRepo.FindByID(ctx, req.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found for payment"}
		}
		s.logger.Error("Failed to load order for payment", zap.String("order_id", req.OrderID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to record payment"}
	}

	payment := &models.Payment{
		OrderID:  req.OrderID,
		UserID:   req.UserID,
		Amount:   *req.Amount,
		Currency: defaultString(req.Currency, "USD"),
		Method:   req.Method,
		Status:   defaultString(req.Status, models.PaymentStatusPending),
	}

	var err error
	if req.GatewayReference != "" {
		ref := req.GatewayReference
		payment.GatewayReference = &ref
		err = s.repo.Upsert(ctx, payment)
	} else {
		err = s.repo.Create(ctx, payment)
	}
	if err != nil {
		s.logger.Error("Failed to record payment", zap.String("order_id", req.OrderID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to record payment"}
	}

	s.logger.Info("Payment recorded",
		zap.String("order_id", payment.OrderID),
		zap.Float64("amount", payment.Amount),
		zap.String("status", payment.Status),
	)
	return payment, nil
}

// defaultString returns fallback when v is empty.
func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
