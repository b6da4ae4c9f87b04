// Package payway builds signed hosted-checkout payloads for ABA PayWay.
// The gateway never receives a server-side call: the browser posts the
// signed payload to the hosted checkout endpoint, and PayWay later posts
// the result to the application's callback route.
package payway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"time"
)

// Error reports a PayWay interaction that cannot be completed, usually
// missing or placeholder configuration.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Config holds the merchant credentials and URLs for the hosted checkout.
type Config struct {
	MerchantID  string
	APIKey      string
	PublicKey   string
	CheckoutURL string
	ReturnURL   string
	CancelURL   string
	Timeout     time.Duration
}

// CheckoutRequest describes one hosted-checkout payload to sign.
type CheckoutRequest struct {
	OrderID  string
	Amount   string
	Items    string
	Currency string
	Customer map[string]any
}

// CheckoutSession is the signed payload plus the endpoint the browser
// should post it to.
type CheckoutSession struct {
	Endpoint string            `json:"endpoint"`
	Payload  map[string]string `json:"payload"`
}

// Gateway creates signed hosted-checkout payloads.
type Gateway interface {
	CreateCheckout(req CheckoutRequest) (*CheckoutSession, error)
}

// Client implements Gateway against the ABA PayWay signing contract.
type Client struct {
	cfg Config
}

// NewClient creates a new PayWay client. Configuration is validated lazily
// on each checkout so a storefront without gateway credentials still boots.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// signingFields is the canonical field order PayWay validates the HMAC
// over, per the public REST documentation. Merchant accounts on a
// different signing contract need this list adjusted.
var signingFields = []string{
	"merchant_id",
	"order_id",
	"amount",
	"currency",
	"items",
	"return_url",
	"cancel_url",
}

// CreateCheckout prepares the hosted-checkout payload: the merchant and
// order fields, optional customer contact fields, and an HMAC-SHA512 hash
// (hex) over the canonical signing string keyed by the API key.
func (c *Client) CreateCheckout(req CheckoutRequest) (*CheckoutSession, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	payload := map[string]string{
		"merchant_id": c.cfg.MerchantID,
		"order_id":    req.OrderID,
		"amount":      req.Amount,
		"currency":    currency,
		"items":       req.Items,
		"return_url":  c.cfg.ReturnURL,
		"cancel_url":  c.cfg.CancelURL,
	}

	if req.Customer != nil {
		if name, ok := req.Customer["name"].(string); ok && name != "" {
			payload["customer_name"] = name
		}
		if email, ok := req.Customer["email"].(string); ok && email != "" {
			payload["customer_email"] = email
		}
		if phone, ok := req.Customer["phone"].(string); ok && phone != "" {
			payload["customer_phone"] = phone
		}
	}

	var parts []string
	for _, field := range signingFields {
		if payload[field] != "" {
			parts = append(parts, payload[field])
		}
	}
	payload["hash"] = c.sign(strings.Join(parts, "|"))

	return &CheckoutSession{
		Endpoint: c.cfg.CheckoutURL,
		Payload:  payload,
	}, nil
}

func (c *Client) sign(message string) string {
	mac := hmac.New(sha512.New, []byte(c.cfg.APIKey))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func (c *Client) validate() error {
	if c.cfg.MerchantID == "" || c.cfg.MerchantID == "YOUR_MERCHANT_ID" {
		return &Error{Message: "ABA PayWay merchant ID has not been configured."}
	}
	if c.cfg.APIKey == "" || c.cfg.APIKey == "YOUR_API_KEY" {
		return &Error{Message: "ABA PayWay API key has not been configured."}
	}
	if c.cfg.CheckoutURL == "" {
		return &Error{Message: "ABA PayWay checkout endpoint URL is missing."}
	}
	if c.cfg.ReturnURL == "" {
		return &Error{Message: "ABA PayWay return URL is missing."}
	}
	if c.cfg.CancelURL == "" {
		return &Error{Message: "ABA PayWay cancel URL is missing."}
	}
	return nil
}
