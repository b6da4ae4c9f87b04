package models

import (
	"fmt"
	"time"
)

// Service is a catalog entry customers can order.
type Service struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Image           string    `gorm:"type:varchar(255)" json:"image"`
	Description     string    `gorm:"type:text" json:"description"`
	LongDescription string    `gorm:"type:text" json:"longDescription"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ServiceResponse is the API representation of a catalog service.
type ServiceResponse struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	PriceDisplay    string  `json:"priceDisplay"`
	Image           string  `json:"image,omitempty"`
	Description     string  `json:"description,omitempty"`
	LongDescription string  `json:"longDescription,omitempty"`
}

// NewServiceResponse maps a catalog service to its API shape.
func NewServiceResponse(s *Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		PriceDisplay:    fmt.Sprintf("$%.2f", s.Price),
		Image:           s.Image,
		Description:     s.Description,
		LongDescription: s.LongDescription,
	}
}

// PricingPlan is a marketing tier rendered on the storefront. Plans are
// static definitions joined to catalog services by name; a plan whose
// service is missing keeps its own price and carries no service id.
type PricingPlan struct {
	Title        string   `json:"title"`
	PriceValue   float64  `json:"priceValue"`
	PriceDisplay string   `json:"priceDisplay"`
	PriceSuffix  string   `json:"priceSuffix"`
	Features     []string `json:"features"`
	Badge        string   `json:"badge,omitempty"`
	Variant      string   `json:"variant"`
	ServiceID    *uint    `json:"serviceId"`
	ServiceName  string   `json:"serviceName,omitempty"`
}

// License is a static inventory entry exposed read-only on the dashboard.
type License struct {
	Key         string `json:"key"`
	Product     string `json:"product"`
	Status      string `json:"status"`
	ActivatedAt string `json:"activatedAt,omitempty"`
	ExpiresAt   string `json:"expiresAt,omitempty"`
}
