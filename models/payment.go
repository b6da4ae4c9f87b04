package models

import "time"

// Payment statuses written by the API and the gateway mirror.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusCaptured = "captured"
)

// PaymentMethodPayway is the method recorded for payments mirrored from
// gateway callbacks.
const PaymentMethodPayway = "ABA PayWay"

// Payment is a ledger entry tied to an order. Rows mirrored from gateway
// callbacks carry the gateway transaction id in GatewayReference; the unique
// index on that column is what keeps the mirror idempotent, so it must stay
// a pointer (multiple NULLs are allowed, empty strings would collide).
type Payment struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OrderID          string    `gorm:"type:varchar(64);not null;index" json:"orderId"`
	UserID           *uint     `gorm:"index" json:"userId"`
	Amount           float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency         string    `gorm:"type:varchar(8);not null;default:'USD'" json:"currency"`
	Method           string    `gorm:"type:varchar(64)" json:"method"`
	Status           string    `gorm:"type:varchar(32);not null;default:'pending'" json:"status"`
	GatewayReference *string   `gorm:"type:varchar(128);uniqueIndex" json:"gatewayReference"`
	ProcessedAt      time.Time `gorm:"autoCreateTime" json:"processedAt"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"-"`
}

// CreatePaymentRequest is the payload for recording a payment through the
// API. Amount is a pointer so an explicit zero passes the presence check.
type CreatePaymentRequest struct {
	OrderID          string   `json:"orderId" binding:"required"`
	Amount           *float64 `json:"amount" binding:"required"`
	Currency         string   `json:"currency"`
	Status           string   `json:"status"`
	Method           string   `json:"method"`
	GatewayReference string   `json:"gatewayReference"`
	UserID           *uint    `json:"userId"`
}

// LedgerSummary aggregates a money ledger for list endpoints and dashboards.
type LedgerSummary struct {
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}
