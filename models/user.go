package models

import "time"

// User is a storefront customer captured at checkout or through the API.
// Users are deduplicated by lowercased email.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"fullName"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"type:varchar(32)" json:"phone"`
	Company   string    `gorm:"type:varchar(255)" json:"company"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// CreateUserRequest is the payload for registering a user. Either fullName
// or name must be provided alongside the email.
type CreateUserRequest struct {
	FullName string `json:"fullName"`
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
}

// DisplayName resolves the fullName/name alias pair.
func (r *CreateUserRequest) DisplayName() string {
	if r.FullName != "" {
		return r.FullName
	}
	return r.Name
}
