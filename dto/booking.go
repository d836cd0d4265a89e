package dto

import "time"

// BookingActionRequest yêu cầu chuyển trạng thái một booking.
// Action: verify | reject | cancel | reconfirm.
// Version phải khớp với version hiện tại của booking, lệch là 409.
type BookingActionRequest struct {
	ID      uint   `json:"id" binding:"required"`
	Action  string `json:"action" binding:"required"`
	Version int    `json:"version"`
}

// BookingListItem dòng hiển thị trên bảng booking
type BookingListItem struct {
	ID          uint      `json:"id"`
	BookingID   string    `json:"bookingId"`
	GuestName   string    `json:"guestName"`
	GuestEmail  string    `json:"guestEmail"`
	RoomName    string    `json:"roomName"`
	CheckIn     string    `json:"checkIn"`
	CheckOut    string    `json:"checkOut"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
}
