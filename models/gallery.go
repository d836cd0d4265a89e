package models

import "time"

// GalleryImage ảnh trong thư viện trang giới thiệu
type GalleryImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
