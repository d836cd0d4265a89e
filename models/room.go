package models

import (
	"encoding/json"
	"time"

	"admin-panel/constants"
)

// Room một hạng phòng (không phải phòng vật lý), có tổng số phòng riêng
type Room struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"index"`
	TotalStock  int             `json:"totalStock"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
	Size        string          `json:"size"`
	Image       string          `json:"image"`
	Images      json.RawMessage `json:"images" gorm:"type:json"`
	Amenities   json.RawMessage `json:"amenities" gorm:"type:json"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// StockOrDefault tổng số phòng, chưa cấu hình thì dùng mặc định
func (r *Room) StockOrDefault() int {
	if r.TotalStock <= 0 {
		return constants.DefaultTotalStock
	}
	return r.TotalStock
}
