package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Order statuses an order may hold. "paid" is normally set by the payment
// callback rather than through the API.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusPaid       = "paid"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
	OrderStatusFailed     = "failed"
)

var allowedOrderStatuses = map[string]bool{
	OrderStatusPending:    true,
	OrderStatusProcessing: true,
	OrderStatusPaid:       true,
	OrderStatusCancelled:  true,
	OrderStatusRefunded:   true,
	OrderStatusFailed:     true,
}

// IsValidOrderStatus reports whether s is an accepted order status.
func IsValidOrderStatus(s string) bool {
	return allowedOrderStatuses[strings.ToLower(s)]
}

// AllowedOrderStatusList returns the accepted statuses in sorted order,
// for error messages.
func AllowedOrderStatusList() string {
	return "cancelled, failed, paid, pending, processing, refunded"
}

// Order is a checkout record tied to a catalog service. The primary key is
// an application-generated string of the form ORDER-<timestamp>-<suffix>.
type Order struct {
	ID              string         `gorm:"type:varchar(64);primaryKey" json:"id"`
	ServiceID       uint           `gorm:"not null;index" json:"serviceId"`
	Service         *Service       `gorm:"foreignKey:ServiceID" json:"-"`
	UnitPrice       float64        `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Quantity        int            `gorm:"not null;default:1" json:"quantity"`
	Amount          float64        `gorm:"type:decimal(10,2);not null" json:"amount"`
	CustomerName    string         `gorm:"type:varchar(255)" json:"customerName"`
	CustomerDetails datatypes.JSON `json:"customerDetails"`
	Status          string         `gorm:"type:varchar(32);not null;default:'pending'" json:"status"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// CustomerDetailsMap decodes the stored customer details, returning an empty
// map when the column is empty or holds invalid JSON.
func (o *Order) CustomerDetailsMap() map[string]any {
	if len(o.CustomerDetails) == 0 {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(o.CustomerDetails, &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

// CreateOrderRequest is the payload for creating an order. The customer
// object is stored verbatim in the order's customer details.
type CreateOrderRequest struct {
	ServiceID uint           `json:"serviceId" binding:"required"`
	Quantity  int            `json:"quantity"`
	Customer  map[string]any `json:"customer"`
}

// UpdateOrderRequest mutates an order's status.
type UpdateOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderResponse is the API representation of an order.
type OrderResponse struct {
	ID           string         `json:"id"`
	ServiceID    uint           `json:"serviceId"`
	ServiceName  string         `json:"serviceName,omitempty"`
	UnitPrice    float64        `json:"unitPrice"`
	Quantity     int            `json:"quantity"`
	Total        float64        `json:"total"`
	TotalDisplay string         `json:"totalDisplay"`
	Status       string         `json:"status"`
	CustomerName string         `json:"customerName,omitempty"`
	Customer     map[string]any `json:"customer"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// NewOrderResponse maps an order (with its service preloaded when available)
// to its API shape.
func NewOrderResponse(o *Order) OrderResponse {
	resp := OrderResponse{
		ID:           o.ID,
		ServiceID:    o.ServiceID,
		UnitPrice:    o.UnitPrice,
		Quantity:     o.Quantity,
		Total:        o.Amount,
		TotalDisplay: fmt.Sprintf("$%.2f", o.Amount),
		Status:       o.Status,
		CustomerName: o.CustomerName,
		Customer:     o.CustomerDetailsMap(),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
	if o.Service != nil {
		resp.ServiceName = o.Service.Name
	}
	return resp
}

// NormalizeCustomerName extracts a display name from a customer object,
// falling back to "Guest".
func NormalizeCustomerName(customer map[string]any) string {
	for _, key := range []string{"name", "full_name", "fullName"} {
		if v, ok := customer[key].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return "Guest"
}

// CustomerEmail extracts a trimmed email address from a customer object.
func CustomerEmail(customer map[string]any) string {
	if v, ok := customer["email"].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
