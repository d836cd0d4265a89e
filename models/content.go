package models

import (
	"encoding/json"
	"time"
)

// ContentSection nội dung tĩnh của site theo từng mục (vd: "dining"),
// mỗi mục chỉ có một bản ghi, ghi đè toàn bộ khi lưu.
type ContentSection struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Section   string          `json:"section" gorm:"uniqueIndex;size:64"`
	Title     string          `json:"title"`
	Body      string          `json:"body"`
	Images    json.RawMessage `json:"images" gorm:"type:json"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
