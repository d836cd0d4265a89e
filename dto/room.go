package dto

import "encoding/json"

// RoomRequest dữ liệu tạo/cập nhật hạng phòng. Ảnh chính gửi qua
// multipart field "image", các field còn lại qua form.
type RoomRequest struct {
	ID          uint    `form:"id"`
	Name        string  `form:"name" binding:"required"`
	TotalStock  int     `form:"totalStock"`
	Price       float64 `form:"price"`
	Description string  `form:"description"`
	Size        string  `form:"size"`
	Image       string  `form:"image"`
	Images      string  `form:"images"`
	Amenities   string  `form:"amenities"`
}

// RoomResponse hạng phòng trả về cho trang quản trị
type RoomResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	TotalStock  int             `json:"totalStock"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
	Size        string          `json:"size"`
	Image       string          `json:"image"`
	Images      json.RawMessage `json:"images"`
	Amenities   json.RawMessage `json:"amenities"`
}
