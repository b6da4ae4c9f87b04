package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Transaction is an append-only audit row for every gateway callback the
// ingester accepts, successes and failures alike. TranID is deliberately
// not unique: a replayed callback appends a second row.
type Transaction struct {
	ID          uint           `gorm:"primaryKey" json:"-"`
	OrderID     *string        `gorm:"type:varchar(64);index" json:"orderId"`
	TranID      string         `gorm:"type:varchar(64);index" json:"tranId"`
	AmountValue float64        `gorm:"type:decimal(10,2);not null;default:0" json:"amount"`
	Currency    string         `gorm:"type:varchar(8);not null;default:'USD'" json:"currency"`
	Status      string         `gorm:"type:varchar(32);not null" json:"status"`
	Timestamp   time.Time      `gorm:"not null;index" json:"timestamp"`
	RawPayload  datatypes.JSON `json:"rawPayload"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"-"`
}

// TransactionResponse is the API representation of an audit row.
type TransactionResponse struct {
	TranID        string         `json:"tranId"`
	Amount        float64        `json:"amount"`
	AmountDisplay string         `json:"amountDisplay"`
	Currency      string         `json:"currency"`
	Status        string         `json:"status"`
	Timestamp     time.Time      `json:"timestamp"`
	RawPayload    datatypes.JSON `json:"rawPayload"`
}

// NewTransactionResponse maps an audit row to its API shape.
func NewTransactionResponse(t *Transaction) TransactionResponse {
	raw := t.RawPayload
	if len(raw) == 0 {
		raw = datatypes.JSON([]byte("{}"))
	}
	return TransactionResponse{
		TranID:        t.TranID,
		Amount:        t.AmountValue,
		AmountDisplay: fmt.Sprintf("%.2f", t.AmountValue),
		Currency:      t.Currency,
		Status:        t.Status,
		Timestamp:     t.Timestamp,
		RawPayload:    raw,
	}
}

// Success statuses a gateway callback may carry.
const (
	CallbackStatusSuccess = "success"
	CallbackStatusPaid    = "paid"
)

// GatewayCallback is the validated form of a raw callback payload.
type GatewayCallback struct {
	TranID    string
	OrderID   string
	Status    string
	Amount    float64
	Currency  string
	Timestamp time.Time
}

// IsSuccess reports whether the callback status counts as a successful
// payment.
func (cb *GatewayCallback) IsSuccess() bool {
	return cb.Status == CallbackStatusSuccess || cb.Status == CallbackStatusPaid
}

// Callback field validation errors.
var (
	ErrCallbackMissingTranID  = errors.New("tran_id is required")
	ErrCallbackMissingOrderID = errors.New("order_id is required")
	ErrCallbackMissingStatus  = errors.New("status is required")
	ErrCallbackMissingAmount  = errors.New("amount is required")
	ErrCallbackBadAmount      = errors.New("amount must be numeric")
)

// ParseGatewayCallback validates a raw callback payload and extracts the
// required fields. The gateway transaction id is accepted under several
// aliases; status values are lowercased; the timestamp falls back to the
// zero value when absent or unparseable, letting the caller stamp the
// received-at time. No field is defaulted: a payload missing any required
// field is rejected before anything is written.
func ParseGatewayCallback(raw map[string]any) (*GatewayCallback, error) {
	cb := &GatewayCallback{}

	cb.TranID = firstStringValue(raw, "tran_id", "txn_id", "transaction_id", "transactionId", "trans_id")
	if cb.TranID == "" {
		return nil, ErrCallbackMissingTranID
	}

	cb.OrderID = firstStringValue(raw, "order_id", "orderId", "orderID")
	if cb.OrderID == "" {
		return nil, ErrCallbackMissingOrderID
	}

	cb.Status = strings.ToLower(firstStringValue(raw, "status"))
	if cb.Status == "" {
		return nil, ErrCallbackMissingStatus
	}

	rawAmount, ok := raw["amount"]
	if !ok || rawAmount == nil || rawAmount == "" {
		return nil, ErrCallbackMissingAmount
	}
	amount, err := coerceAmount(rawAmount)
	if err != nil {
		return nil, ErrCallbackBadAmount
	}
	cb.Amount = amount

	cb.Currency = firstStringValue(raw, "currency")
	if cb.Currency == "" {
		cb.Currency = "USD"
	}

	if ts := firstStringValue(raw, "timestamp"); ts != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
			if parsed, err := time.Parse(layout, ts); err == nil {
				cb.Timestamp = parsed
				break
			}
		}
	}

	return cb, nil
}

// firstStringValue returns the first non-empty value among the given keys,
// rendered as a string. Gateways post form fields as strings but JSON
// replays may carry numbers, so numeric values are formatted without a
// trailing fraction ("42", not "42.000000").
func firstStringValue(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			if s := strings.TrimSpace(val); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(val, 'f', -1, 64)
		case int:
			return strconv.Itoa(val)
		case int64:
			return strconv.FormatInt(val, 10)
		}
	}
	return ""
}

func coerceAmount(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(val), 64)
	default:
		return 0, fmt.Errorf("unsupported amount type %T", v)
	}
}
