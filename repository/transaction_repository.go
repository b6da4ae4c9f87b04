package repository

import (
	"context"

	"github.com/ttra33507-star/c4web/models"

	"gorm.io/gorm"
)

// TransactionRepository defines data-access operations for the callback
// audit log. The log is append-only: there are no update or delete paths.
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	FindAll(ctx context.Context) ([]models.Transaction, error)
	Summary(ctx context.Context) (*models.LedgerSummary, error)
}

// GormTransactionRepository implements TransactionRepository using GORM.
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository.
func NewGormTransactionRepository(db *gorm.DB) TransactionRepository {
	return &GormTransactionRepository{db: db}
}

func (r *GormTransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *GormTransactionRepository) FindAll(ctx context.Context) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// Summary aggregates the audit log in a single query.
func (r *GormTransactionRepository) Summary(ctx context.Context) (*models.LedgerSummary, error) {
	var result struct {
		Count int64
		Total float64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount_value), 0) AS total").
		Scan(&result).Error; err != nil {
		return nil, err
	}
	return &models.LedgerSummary{Count: result.Count, TotalAmount: result.Total}, nil
}
