package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogService exposes the services catalog, pricing tiers and the
// license inventory.
type CatalogService interface {
	ListServices(ctx context.Context) ([]models.Service, *ServiceError)
	GetService(ctx context.Context, id uint) (*models.Service, *ServiceError)
	ListPricingPlans(ctx context.Context) ([]models.PricingPlan, *ServiceError)
	ListLicenses(ctx context.Context) []models.License
	EnsureSeedData(ctx context.Context) error
}

type catalogServiceImpl struct {
	repo     repository.ServiceRepository
	licenses []models.License
	logger   *zap.Logger
}

// NewCatalogService creates a new CatalogService. A nil license inventory
// falls back to the built-in (empty) one.
func NewCatalogService(repo repository.ServiceRepository, licenses []models.License, logger *zap.Logger) CatalogService {
	if licenses == nil {
		licenses = defaultLicenses
	}
	return &catalogServiceImpl{
		repo:     repo,
		licenses: licenses,
		logger:   logger,
	}
}

// ListServices returns the full catalog ordered by id.
func (s *catalogServiceImpl) ListServices(ctx context.Context) ([]models.Service, *ServiceError) {
	services, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list services", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list services"}
	}
	return services, nil
}

// GetService retrieves one catalog entry.
func (s *catalogServiceImpl) GetService(ctx context.Context, id uint) (*models.Service, *ServiceError) {
	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Service not found"}
		}
		s.logger.Error("Failed to load service", zap.Uint("service_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load service"}
	}
	return service, nil
}

// ListPricingPlans joins the static plan definitions to catalog services by
// name. A plan whose service is missing keeps its definition price.
func (s *catalogServiceImpl) ListPricingPlans(ctx context.Context) ([]models.PricingPlan, *ServiceError) {
	services, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to load services for pricing plans", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load pricing plans"}
	}

	byName := make(map[string]*models.Service, len(services))
	for i := range services {
		byName[services[i].Name] = &services[i]
	}

	plans := make([]models.PricingPlan, 0, len(pricingPlanDefinitions))
	for _, def := range pricingPlanDefinitions {
		plan := models.PricingPlan{
			Title:       def.Title,
			PriceValue:  def.Price,
			PriceSuffix: def.PriceSuffix,
			Features:    def.Features,
			Badge:       def.Badge,
			Variant:     def.Variant,
		}
		if svc, ok := byName[def.ServiceName]; ok {
			plan.PriceValue = svc.Price
			plan.ServiceID = &svc.ID
			plan.ServiceName = svc.Name
		}
		plan.PriceDisplay = formatAmount(plan.PriceValue)
		plans = append(plans, plan)
	}
	return plans, nil
}

// ListLicenses returns the static license inventory.
func (s *catalogServiceImpl) ListLicenses(ctx context.Context) []models.License {
	return s.licenses
}

// EnsureSeedData populates the services table with the default catalog,
// creating missing entries and refreshing drifted fields on existing ones.
func (s *catalogServiceImpl) EnsureSeedData(ctx context.Context) error {
	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}

	byName := make(map[string]*models.Service, len(existing))
	for i := range existing {
		byName[existing[i].Name] = &existing[i]
	}

	for _, entry := range defaultServices {
		image := normalizeStaticImageName(entry.Image)
		service, ok := byName[entry.Name]
		if !ok {
			created := &models.Service{
				Name:            entry.Name,
				Price:           entry.Price,
				Image:           image,
				Description:     entry.Description,
				LongDescription: entry.LongDescription,
			}
			if err := s.repo.Create(ctx, created); err != nil {
				return err
			}
			s.logger.Info("Seeded catalog service", zap.String("name", entry.Name))
			continue
		}

		changed := false
		if service.Price != entry.Price {
			service.Price = entry.Price
			changed = true
		}
		if image != "" && service.Image != image {
			service.Image = image
			changed = true
		}
		if entry.Description != "" && service.Description != entry.Description {
			service.Description = entry.Description
			changed = true
		}
		if entry.LongDescription != "" && service.LongDescription != entry.LongDescription {
			service.LongDescription = entry.LongDescription
			changed = true
		}
		if changed {
			if err := s.repo.Update(ctx, service); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatAmount renders a money value with two decimals, without a currency
// symbol.
func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
