package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ttra33507-star/c4web/controllers"
	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/payway"
	"github.com/ttra33507-star/c4web/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ---- concrete mocks for the payment and checkout services ----

type mockPaymentSvc struct {
	payments  []models.Payment
	summary   *models.LedgerSummary
	listErr   *services.ServiceError
	payment   *models.Payment
	recordErr *services.ServiceError
}

func (m *mockPaymentSvc) ListPayments(_ context.Context) ([]models.Payment, *models.LedgerSummary, *services.ServiceError) {
	if m.listErr != nil {
		return nil, nil, m.listErr
	}
	return m.payments, m.summary, nil
}

func (m *mockPaymentSvc) RecordPayment(_ context.Context, _ *models.CreatePaymentRequest) (*models.Payment, *services.ServiceError) {
	if m.recordErr != nil {
		return nil, m.recordErr
	}
	return m.payment, nil
}

type mockCheckoutSvc struct {
	result      *services.CheckoutResult
	checkoutErr *services.ServiceError
	gotReq      *services.CheckoutRequest
}

func (m *mockCheckoutSvc) CreateCheckout(_ context.Context, req *services.CheckoutRequest) (*services.CheckoutResult, *services.ServiceError) {
	m.gotReq = req
	if m.checkoutErr != nil {
		return nil, m.checkoutErr
	}
	return m.result, nil
}

// ---- helpers ----

func setupPaymentRouter(payments services.PaymentService, checkout services.CheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := controllers.NewPaymentController(payments, checkout)

	r.GET("/api/payments", c.ListPayments)
	r.POST("/api/payments", c.CreatePayment)
	r.POST("/api/payments/aba/checkout", c.PaywayCheckout)
	return r
}

// ---- tests ----

func TestPaywayCheckout_ReturnsSignedPayload(t *testing.T) {
	checkout := &mockCheckoutSvc{
		result: &services.CheckoutResult{
			Session: &payway.CheckoutSession{
				Endpoint: "https://checkout.payway.com.kh/api/purchase",
				Payload:  map[string]string{"merchant_id": "ec400001", "amount": "25.50", "hash": "abc"},
			},
			OrderID: "ORDER-20250820103000-0001",
		},
	}
	r := setupPaymentRouter(&mockPaymentSvc{}, checkout)

	body := map[string]any{
		"serviceId": 2,
		"customer":  map[string]any{"name": "Sok Piseth", "email": "sok@example.com"},
	}
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/payments/aba/checkout", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "https://checkout.payway.com.kh/api/purchase", resp["endpoint"])
	assert.Equal(t, "ORDER-20250820103000-0001", resp["orderId"])
	payload, ok := resp["payload"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "25.50", payload["amount"])

	if assert.NotNil(t, checkout.gotReq) {
		assert.Equal(t, uint(2), checkout.gotReq.ServiceID)
		assert.Equal(t, "Sok Piseth", checkout.gotReq.Customer["name"])
	}
}

func TestPaywayCheckout_MissingServiceID(t *testing.T) {
	checkout := &mockCheckoutSvc{}
	r := setupPaymentRouter(&mockPaymentSvc{}, checkout)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/aba/checkout", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, checkout.gotReq)
}

func TestPaywayCheckout_GatewayMisconfigured(t *testing.T) {
	checkout := &mockCheckoutSvc{
		checkoutErr: &services.ServiceError{StatusCode: 502, Message: "ABA PayWay merchant ID has not been configured."},
	}
	r := setupPaymentRouter(&mockPaymentSvc{}, checkout)

	b, _ := json.Marshal(map[string]any{"serviceId": 1})
	req := httptest.NewRequest(http.MethodPost, "/api/payments/aba/checkout", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "ABA PayWay merchant ID has not been configured.", resp["error"])
}

func TestCreatePayment_Created(t *testing.T) {
	ref := "TXN-001"
	payments := &mockPaymentSvc{
		payment: &models.Payment{ID: 1, OrderID: "ORDER-1", Amount: 25.5, Status: "captured", GatewayReference: &ref},
	}
	r := setupPaymentRouter(payments, &mockCheckoutSvc{})

	b, _ := json.Marshal(map[string]any{"orderId": "ORDER-1", "amount": 25.5, "status": "captured"})
	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.Payment
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "ORDER-1", resp.OrderID)
	assert.Equal(t, "captured", resp.Status)
}

func TestCreatePayment_MissingAmount(t *testing.T) {
	r := setupPaymentRouter(&mockPaymentSvc{}, &mockCheckoutSvc{})

	b, _ := json.Marshal(map[string]any{"orderId": "ORDER-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePayment_UnknownOrder(t *testing.T) {
	payments := &mockPaymentSvc{
		recordErr: &services.ServiceError{StatusCode: 404, Message: "Order not found for payment"},
	}
	r := setupPaymentRouter(payments, &mockCheckoutSvc{})

	b, _ := json.Marshal(map[string]any{"orderId": "ORDER-404", "amount": 9.99})
	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPayments_ReturnsSummary(t *testing.T) {
	payments := &mockPaymentSvc{
		payments: []models.Payment{{ID: 1, OrderID: "ORDER-1", Amount: 12.5}},
		summary:  &models.LedgerSummary{Count: 1, TotalAmount: 12.5},
	}
	r := setupPaymentRouter(payments, &mockCheckoutSvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	rows, ok := resp["payments"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, rows, 1)
	summary, _ := resp["summary"].(map[string]interface{})
	assert.Equal(t, 12.5, summary["totalAmount"])
}
