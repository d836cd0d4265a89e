package services

import (
	"admin-panel/constants"
	"admin-panel/models"
)

// RoomAvailabilityToday tồn phòng trong ngày của một hạng phòng
type RoomAvailabilityToday struct {
	RoomID    uint   `json:"roomId"`
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
}

// AvailableToday tính tồn phòng hôm nay từ toàn bộ danh sách booking,
// không dựa vào sổ tồn phòng. Booking chiếm ngày theo khoảng nửa mở
// [checkIn, checkOut); ngày dạng YYYY-MM-DD nên so sánh chuỗi là đủ.
// Booking có tên phòng không khớp hạng phòng nào bị loại khỏi kết quả.
func AvailableToday(rooms []models.Room, bookings []models.Booking, today string) []RoomAvailabilityToday {
	bookedCounts := make(map[string]int)
	for _, b := range bookings {
		if b.Status == constants.BookingStatusCancelled {
			continue
		}
		if b.Stay.CheckIn == "" || b.Stay.CheckOut == "" {
			continue
		}
		if b.Stay.CheckIn <= today && b.Stay.CheckOut > today {
			if b.Room.Name == "" {
				continue
			}
			bookedCounts[b.Room.Name] += b.RoomsCountOrDefault()
		}
	}

	result := make([]RoomAvailabilityToday, 0, len(rooms))
	for _, room := range rooms {
		total := room.StockOrDefault()
		available := total - bookedCounts[room.Name]
		if available < 0 {
			available = 0
		}
		result = append(result, RoomAvailabilityToday{
			RoomID:    room.ID,
			Name:      room.Name,
			Total:     total,
			Available: available,
		})
	}
	return result
}
