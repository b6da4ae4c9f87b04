package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUpdateStatus_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET`)).
		WithArgs("paid", sqlmock.AnyArg(), "ORDER-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), "ORDER-1", "paid")
	assert.NoError(t, err)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET`)).
		WithArgs("paid", sqlmock.AnyArg(), "ORDER-404").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), "ORDER-404", "paid")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderFindByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	o, err := repo.FindByID(context.Background(), "ORDER-404")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, o)
}

func TestOrderFindAll_ReturnsRows(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	orderRows := sqlmock.NewRows([]string{"id", "service_id", "unit_price", "quantity", "amount", "customer_name", "status"}).
		AddRow("ORDER-2", 2, 25.5, 1, 25.5, "Sok Piseth", "paid").
		AddRow("ORDER-1", 1, 9.99, 2, 19.98, "Guest", "pending")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" ORDER BY created_at DESC`)).
		WillReturnRows(orderRows)
	// Preload("Service") fetches the referenced services in one extra query.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "services"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(1, "Auto Delete Comment - 1 Month Plan", 9.99).
			AddRow(2, "Facebook Station", 25.5))

	orders, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, "ORDER-2", orders[0].ID)
	if assert.NotNil(t, orders[0].Service) {
		assert.Equal(t, "Facebook Station", orders[0].Service.Name)
	}
}

func TestOrderCreate_InsertsRow(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	order := &models.Order{
		ID:        "ORDER-20250820103000-0001",
		ServiceID: 2,
		UnitPrice: 25.5,
		Quantity:  1,
		Amount:    25.5,
		Status:    models.OrderStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"quantity", "status"}).AddRow(1, "pending"))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), order)
	assert.NoError(t, err)
}
