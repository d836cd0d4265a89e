package models

import "time"

// RoomAvailability sổ tồn phòng: một dòng cho mỗi cặp (hạng phòng, ngày).
// BookedCount có thể âm khi các thao tác trả phòng chạy đua nhau.
type RoomAvailability struct {
	ID          uint      `gorm:"primaryKey"`
	RoomID      uint      `gorm:"index:idx_room_date,unique"`
	Date        string    `gorm:"index:idx_room_date,unique;size:10"`
	BookedCount int       `json:"bookedCount"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
