package models

import "time"

// SiteVisit một lượt truy cập trang, ghi lại từ phía site công khai
type SiteVisit struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Page      string    `json:"page" gorm:"index"`
	Referrer  string    `json:"referrer,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	VisitedAt time.Time `json:"visitedAt" gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
