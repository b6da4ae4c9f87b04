package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newCatalogFixture(licenses []models.License, seed ...*models.Service) (services.CatalogService, *fakeServiceRepo) {
	repo := newFakeServiceRepo(seed...)
	logger, _ := zap.NewDevelopment()
	return services.NewCatalogService(repo, licenses, logger), repo
}

func TestEnsureSeedData_PopulatesEmptyCatalog(t *testing.T) {
	svc, repo := newCatalogFixture(nil)

	err := svc.EnsureSeedData(context.Background())

	assert.NoError(t, err)
	all, _ := repo.FindAll(context.Background())
	assert.Len(t, all, 5)

	byName := make(map[string]models.Service, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}
	station, ok := byName["Telegram Station"]
	assert.True(t, ok)
	assert.Equal(t, 89.99, station.Price)
	assert.Equal(t, "C4-TG-Station.png", station.Image)
}

func TestEnsureSeedData_RefreshesDriftedFields(t *testing.T) {
	svc, repo := newCatalogFixture(nil, &models.Service{
		ID:    1,
		Name:  "Telegram Station",
		Price: 10.00,
		Image: "old.png",
	})

	err := svc.EnsureSeedData(context.Background())

	assert.NoError(t, err)
	refreshed, _ := repo.FindByID(context.Background(), 1)
	assert.Equal(t, 89.99, refreshed.Price)
	assert.Equal(t, "C4-TG-Station.png", refreshed.Image)
	assert.Equal(t, "Immersive audio with hybrid ANC for open offices.", refreshed.Description)
}

func TestEnsureSeedData_IsIdempotent(t *testing.T) {
	svc, repo := newCatalogFixture(nil)

	assert.NoError(t, svc.EnsureSeedData(context.Background()))
	assert.NoError(t, svc.EnsureSeedData(context.Background()))

	all, _ := repo.FindAll(context.Background())
	assert.Len(t, all, 5)
}

func TestEnsureSeedData_PropagatesRepositoryError(t *testing.T) {
	svc, repo := newCatalogFixture(nil)
	repo.findAllErr = errors.New("db offline")

	err := svc.EnsureSeedData(context.Background())

	assert.EqualError(t, err, "db offline")
}

func TestListServices_ReturnsCatalog(t *testing.T) {
	svc, _ := newCatalogFixture(nil,
		&models.Service{ID: 1, Name: "Facebook Station", Price: 29.99},
		&models.Service{ID: 2, Name: "Telegram Station", Price: 89.99},
	)

	list, svcErr := svc.ListServices(context.Background())

	assert.Nil(t, svcErr)
	assert.Len(t, list, 2)
	assert.Equal(t, "Facebook Station", list[0].Name)
}

func TestListServices_RepositoryFailure(t *testing.T) {
	svc, repo := newCatalogFixture(nil)
	repo.findAllErr = errors.New("db offline")

	_, svcErr := svc.ListServices(context.Background())

	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
	assert.Equal(t, "Failed to list services", svcErr.Message)
}

func TestGetService_NotFound(t *testing.T) {
	svc, _ := newCatalogFixture(nil)

	_, svcErr := svc.GetService(context.Background(), 99)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Equal(t, "Service not found", svcErr.Message)
}

func TestListPricingPlans_JoinsServicesByName(t *testing.T) {
	svc, _ := newCatalogFixture(nil, &models.Service{
		ID:    7,
		Name:  "3 Month Automation Plan",
		Price: 34.99,
	})

	plans, svcErr := svc.ListPricingPlans(context.Background())

	assert.Nil(t, svcErr)
	assert.Len(t, plans, 3)

	var joined *models.PricingPlan
	for i := range plans {
		if plans[i].Title == "3 Months" {
			joined = &plans[i]
		}
	}
	if assert.NotNil(t, joined) {
		// The catalog price wins over the static definition.
		assert.Equal(t, 34.99, joined.PriceValue)
		assert.Equal(t, "34.99", joined.PriceDisplay)
		if assert.NotNil(t, joined.ServiceID) {
			assert.Equal(t, uint(7), *joined.ServiceID)
		}
		assert.Equal(t, "Most popular", joined.Badge)
	}
}

func TestListPricingPlans_UnmatchedPlanKeepsDefinitionPrice(t *testing.T) {
	svc, _ := newCatalogFixture(nil)

	plans, svcErr := svc.ListPricingPlans(context.Background())

	assert.Nil(t, svcErr)
	assert.Len(t, plans, 3)
	for _, plan := range plans {
		assert.Nil(t, plan.ServiceID, "plan %q should not resolve to a service", plan.Title)
		assert.NotEmpty(t, plan.PriceDisplay)
		assert.NotZero(t, plan.PriceValue)
	}
}

func TestListLicenses_CustomInventory(t *testing.T) {
	inventory := []models.License{{Key: "C4-0001", Product: "Facebook Station", Status: "active"}}
	svc, _ := newCatalogFixture(inventory)

	licenses := svc.ListLicenses(context.Background())

	assert.Len(t, licenses, 1)
	assert.Equal(t, "C4-0001", licenses[0].Key)
}

func TestListLicenses_DefaultInventoryIsEmpty(t *testing.T) {
	svc, _ := newCatalogFixture(nil)

	licenses := svc.ListLicenses(context.Background())

	assert.NotNil(t, licenses)
	assert.Empty(t, licenses)
}
