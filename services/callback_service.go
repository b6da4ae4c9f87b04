package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/repository"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CallbackService ingests gateway payment callbacks and exposes the audit
// log they build up.
type CallbackService interface {
	Ingest(ctx context.Context, payload map[string]any) (*models.Transaction, *ServiceError)
	ListTransactions(ctx context.Context) ([]models.Transaction, *models.LedgerSummary, *ServiceError)
}

type callbackServiceImpl struct {
	txns     repository.TransactionRepository
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	logger   *zap.Logger
}

// NewCallbackService creates a new CallbackService.
func NewCallbackService(
	txns repository.TransactionRepository,
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	logger *zap.Logger,
) CallbackService {
	return &callbackServiceImpl{
		txns:     txns,
		orders:   orders,
		payments: payments,
		logger:   logger,
	}
}

// Ingest processes one gateway callback. Every valid payload is recorded
// as an audit row, failed statuses included; the audit insert is the only
// mandatory write. A success-status callback additionally mirrors a ledger
// payment keyed on the gateway transaction id, and that mirror write is
// best-effort: when it fails the callback is still acknowledged, because
// the audit row preserves everything needed to reconcile later and the
// gateway's own retry re-runs the idempotent upsert.
func (s *callbackServiceImpl) Ingest(ctx context.Context, payload map[string]any) (*models.Transaction, *ServiceError) {
	cb, err := models.ParseGatewayCallback(payload)
	if err != nil {
		s.logger.Warn("Rejected malformed gateway callback", zap.Error(err))
		return nil, &ServiceError{StatusCode: 400, Message: err.Error()}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("Failed to encode callback payload", zap.String("tran_id", cb.TranID), zap.Error(err))
		raw = []byte("{}")
	}

	timestamp := cb.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	orderID := cb.OrderID
	txn := &models.Transaction{
		OrderID:     &orderID,
		TranID:      cb.TranID,
		AmountValue: cb.Amount,
		Currency:    cb.Currency,
		Status:      cb.Status,
		Timestamp:   timestamp,
		RawPayload:  datatypes.JSON(raw),
	}
	if err := s.txns.Create(ctx, txn); err != nil {
		s.logger.Error("Failed to record gateway transaction",
			zap.String("tran_id", cb.TranID),
			zap.String("order_id", cb.OrderID),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to record transaction"}
	}

	s.logger.Info("Gateway callback recorded",
		zap.String("tran_id", cb.TranID),
		zap.String("order_id", cb.OrderID),
		zap.String("status", cb.Status),
		zap.Float64("amount", cb.Amount),
	)

	s.updateOrderStatus(ctx, cb)
	s.mirrorPayment(ctx, cb)

	return txn, nil
}

// updateOrderStatus moves the referenced order to the callback's canonical
// status. Callbacks may reference orders that were never stored locally,
// so a missing order is not an error.
func (s *callbackServiceImpl) updateOrderStatus(ctx context.Context, cb *models.GatewayCallback) {
	status := cb.Status
	if cb.Status == models.CallbackStatusSuccess {
		status = models.OrderStatusPaid
	}

	if err := s.orders.UpdateStatus(ctx, cb.OrderID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Debug("Callback references unknown order", zap.String("order_id", cb.OrderID))
			return
		}
		s.logger.Warn("Failed to update order from callback",
			zap.String("order_id", cb.OrderID),
			zap.String("tran_id", cb.TranID),
			zap.Error(err),
		)
	}
}

// mirrorPayment upserts the ledger payment for a successful callback. The
// write is keyed on the unique gateway reference, so a replayed callback
// updates the existing row in place instead of adding a second one.
func (s *callbackServiceImpl) mirrorPayment(ctx context.Context, cb *models.GatewayCallback) {
	if !cb.IsSuccess() || cb.Amount == 0 {
		return
	}

	status := cb.Status
	if cb.Status == models.CallbackStatusSuccess {
		status = models.PaymentStatusCaptured
	}

	ref := cb.TranID
	payment := &models.Payment{
		OrderID:          cb.OrderID,
		Amount:           cb.Amount,
		Currency:         cb.Currency,
		Status:           status,
		Method:           models.PaymentMethodPayway,
		GatewayReference: &ref,
	}
	if err := s.payments.Upsert(ctx, payment); err != nil {
		s.logger.Error("Failed to mirror payment from callback",
			zap.String("tran_id", cb.TranID),
			zap.String("order_id", cb.OrderID),
			zap.Float64("amount", cb.Amount),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("Payment mirrored from callback",
		zap.String("tran_id", cb.TranID),
		zap.String("order_id", cb.OrderID),
		zap.String("status", status),
	)
}

// ListTransactions returns the audit log ordered by callback timestamp
// plus its aggregate summary.
func (s *callbackServiceImpl) ListTransactions(ctx context.Context) ([]models.Transaction, *models.LedgerSummary, *ServiceError) {
	txns, err := s.txns.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list transactions", zap.Error(err))
		return nil, nil, &ServiceError{StatusCode: 500, Message: "Failed to list transactions"}
	}
	summary, err := s.txns.Summary(ctx)
	if err != nil {
		s.logger.Error("Failed to summarize transactions", zap.Error(err))
		return nil, nil, &ServiceError{StatusCode: 500, Message: "Failed to list transactions"}
	}
	return txns, summary, nil
}
