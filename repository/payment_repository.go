package repository

import (
	"context"
	"time"

	"github.com/ttra33507-star/c4web/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentRepository defines data-access operations for the payment ledger.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	Upsert(ctx context.Context, payment *models.Payment) error
	FindAll(ctx context.Context) ([]models.Payment, error)
	Summary(ctx context.Context) (*models.LedgerSummary, error)
}

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository.
func NewGormPaymentRepository(db *gorm.DB) PaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Upsert inserts a payment keyed on its gateway reference, updating the
// existing row in place on conflict. The write is a single
// INSERT ... ON CONFLICT DO UPDATE statement so concurrent callbacks for
// the same reference cannot produce duplicate rows; coordination lives in
// the unique index, not in application locking.
func (r *GormPaymentRepository) Upsert(ctx context.Context, payment *models.Payment) error {
	if payment.GatewayReference == nil {
		return r.Create(ctx, payment)
	}

	assignments := map[string]interface{}{
		"amount":       payment.Amount,
		"currency":     payment.Currency,
		"status":       payment.Status,
		"method":       payment.Method,
		"processed_at": time.Now().UTC(),
	}
	if payment.UserID != nil {
		assignments["user_id"] = *payment.UserID
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "gateway_reference"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(payment).Error
}

func (r *GormPaymentRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Order("processed_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Summary aggregates the ledger in a single query.
func (r *GormPaymentRepository) Summary(ctx context.Context) (*models.LedgerSummary, error) {
	var result struct {
		Count int64
		Total float64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Scan(&result).Error; err != nil {
		return nil, err
	}
	return &models.LedgerSummary{Count: result.Count, TotalAmount: result.Total}, nil
}
