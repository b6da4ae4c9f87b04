package models

import "time"

// Report is a free-form support or compliance entry. Status is the only
// mutable field; ResolvedAt records the time of the latest status change.
type Report struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     *uint      `gorm:"index" json:"userId"`
	Title      string     `gorm:"type:varchar(255);not null" json:"title"`
	Category   string     `gorm:"type:varchar(64)" json:"category"`
	Summary    string     `gorm:"type:text" json:"summary"`
	Status     string     `gorm:"type:varchar(32);not null;default:'open'" json:"status"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	ResolvedAt *time.Time `json:"resolvedAt"`
}

// CreateReportRequest is the payload for filing a report.
type CreateReportRequest struct {
	Title    string `json:"title" binding:"required"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	Status   string `json:"status"`
	UserID   *uint  `json:"userId"`
}

// UpdateReportRequest mutates a report's status. An empty status defaults
// to "resolved".
type UpdateReportRequest struct {
	Status string `json:"status"`
}
