package services_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ---- fake catalog repository ----

type fakeServiceRepo struct {
	findErr    error
	findAllErr error
	createErr  error
	services   map[uint]*models.Service
}

func newFakeServiceRepo(seed ...*models.Service) *fakeServiceRepo {
	f := &fakeServiceRepo{services: make(map[uint]*models.Service)}
	for _, s := range seed {
		f.services[s.ID] = s
	}
	return f
}

func (f *fakeServiceRepo) Create(_ context.Context, s *models.Service) error {
	if f.createErr != nil {
		return f.createErr
	}
	if s.ID == 0 {
		s.ID = uint(len(f.services) + 1)
	}
	f.services[s.ID] = s
	return nil
}

func (f *fakeServiceRepo) Update(_ context.Context, s *models.Service) error {
	f.services[s.ID] = s
	return nil
}

func (f *fakeServiceRepo) FindByID(_ context.Context, id uint) (*models.Service, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	s, ok := f.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeServiceRepo) FindByName(_ context.Context, name string) (*models.Service, error) {
	for _, s := range f.services {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeServiceRepo) FindAll(_ context.Context) ([]models.Service, error) {
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	ids := make([]int, 0, len(f.services))
	for id := range f.services {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.services[uint(id)])
	}
	return out, nil
}

// ---- fake user service ----

type fakeUserService struct {
	user   *models.User
	err    *services.ServiceError
	gotReq *models.CreateUserRequest
}

func (f *fakeUserService) ListUsers(_ context.Context) ([]models.User, *services.ServiceError) {
	return nil, nil
}

func (f *fakeUserService) CreateUser(_ context.Context, req *models.CreateUserRequest) (*models.User, *services.ServiceError) {
	f.gotReq = req
	return f.user, f.err
}

// ---- helpers ----

func newOrderFixture(seed ...*models.Service) (services.OrderService, *fakeOrderRepo, *fakeUserService) {
	logger, _ := zap.NewDevelopment()
	orders := newFakeOrderRepo()
	users := &fakeUserService{user: &models.User{ID: 7, FullName: "Sok Piseth", Email: "sok@example.com"}}
	svc := services.NewOrderService(orders, newFakeServiceRepo(seed...), users, logger)
	return svc, orders, users
}

// ---- tests ----

func TestCreateOrder_Success(t *testing.T) {
	svc, orders, users := newOrderFixture(&models.Service{ID: 3, Name: "Contact Source", Price: 10.0})

	req := &models.CreateOrderRequest{
		ServiceID: 3,
		Quantity:  3,
		Customer:  map[string]any{"name": "Sok Piseth", "email": "sok@example.com"},
	}
	order, svcErr := svc.CreateOrder(context.Background(), req)

	assert.Nil(t, svcErr)
	assert.True(t, strings.HasPrefix(order.ID, "ORDER-"))
	assert.Equal(t, uint(3), order.ServiceID)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, 30.0, order.Amount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Sok Piseth", order.CustomerName)
	assert.Contains(t, orders.statuses, order.ID)

	// The registered user's id ends up inside the stored customer details.
	assert.NotNil(t, users.gotReq)
	details := order.CustomerDetailsMap()
	assert.EqualValues(t, 7, details["userId"])
}

func TestCreateOrder_UnknownService(t *testing.T) {
	svc, _, _ := newOrderFixture()

	_, svcErr := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{ServiceID: 99})

	if assert.NotNil(t, svcErr) {
		assert.Equal(t, 404, svcErr.StatusCode)
	}
}

func TestCreateOrder_QuantityDefaultsToOne(t *testing.T) {
	svc, _, _ := newOrderFixture(&models.Service{ID: 1, Name: "Auto Comment", Price: 5.0})

	order, svcErr := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{ServiceID: 1})

	assert.Nil(t, svcErr)
	assert.Equal(t, 1, order.Quantity)
	assert.Equal(t, 5.0, order.Amount)
}

func TestCreateOrder_UserRegistrationFailureIsNotFatal(t *testing.T) {
	svc, orders, users := newOrderFixture(&models.Service{ID: 1, Name: "Auto Comment", Price: 5.0})
	users.user = nil
	users.err = &services.ServiceError{StatusCode: 500, Message: "db down"}

	req := &models.CreateOrderRequest{
		ServiceID: 1,
		Customer:  map[string]any{"name": "Guest One", "email": "guest@example.com"},
	}
	order, svcErr := svc.CreateOrder(context.Background(), req)

	assert.Nil(t, svcErr)
	assert.Contains(t, orders.statuses, order.ID)
	_, stamped := order.CustomerDetailsMap()["userId"]
	assert.False(t, stamped, "a failed registration must not invent a user id")
}

func TestUpdateStatus_Valid(t *testing.T) {
	svc, orders, _ := newOrderFixture()
	orders.statuses["ORDER-1"] = models.OrderStatusPending

	order, svcErr := svc.UpdateStatus(context.Background(), "ORDER-1", "Paid")

	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.Equal(t, models.OrderStatusPaid, orders.statuses["ORDER-1"])
}

func TestUpdateStatus_RejectsUnknownValue(t *testing.T) {
	svc, orders, _ := newOrderFixture()
	orders.statuses["ORDER-1"] = models.OrderStatusPending

	_, svcErr := svc.UpdateStatus(context.Background(), "ORDER-1", "shipped")

	if assert.NotNil(t, svcErr) {
		assert.Equal(t, 400, svcErr.StatusCode)
		assert.Contains(t, svcErr.Message, "pending")
		assert.Contains(t, svcErr.Message, "refunded")
	}
	assert.Equal(t, models.OrderStatusPending, orders.statuses["ORDER-1"])
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	svc, _, _ := newOrderFixture()

	_, svcErr := svc.UpdateStatus(context.Background(), "ORDER-GHOST", "paid")

	if assert.NotNil(t, svcErr) {
		assert.Equal(t, 404, svcErr.StatusCode)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	svc, _, _ := newOrderFixture()

	_, svcErr := svc.GetOrder(context.Background(), "ORDER-GHOST")

	if assert.NotNil(t, svcErr) {
		assert.Equal(t, 404, svcErr.StatusCode)
	}
}

func TestUpdateCustomer_ReplacesDetails(t *testing.T) {
	svc, orders, _ := newOrderFixture()
	orders.statuses["ORDER-5"] = models.OrderStatusPending

	customer := map[string]any{"name": "Chan Dara", "email": "dara@example.com"}
	order, svcErr := svc.UpdateCustomer(context.Background(), "ORDER-5", customer)

	assert.Nil(t, svcErr)
	assert.Equal(t, "Chan Dara", order.CustomerName)
	assert.Equal(t, "dara@example.com", order.CustomerDetailsMap()["email"])
}
