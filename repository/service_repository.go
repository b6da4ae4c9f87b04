package repository

import (
	"context"

	"github.com/ttra33507-star/c4web/models"

	"gorm.io/gorm"
)

// ServiceRepository defines data-access operations for the catalog.
type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
	FindByID(ctx context.Context, id uint) (*models.Service, error)
	FindByName(ctx context.Context, name string) (*models.Service, error)
	FindAll(ctx context.Context) ([]models.Service, error)
}

// GormServiceRepository implements ServiceRepository using GORM.
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository.
func NewGormServiceRepository(db *gorm.DB) ServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *GormServiceRepository) Update(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *GormServiceRepository) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormServiceRepository) FindByName(ctx context.Context, name string) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}
