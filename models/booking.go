package models

import (
	"fmt"
	"time"

	"admin-panel/constants"
)

// Guest thông tin khách đặt phòng, chỉ yêu cầu có mặt, không validate thêm
type Guest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// RoomRef hạng phòng denormalize trên booking. Name là cache hiển thị,
// RoomID mới là khóa tham chiếu ổn định về hạng phòng.
type RoomRef struct {
	RoomID            uint    `json:"roomId"`
	Name              string  `json:"name"`
	Image             string  `json:"image,omitempty"`
	BasePricePerNight float64 `json:"basePricePerNight,omitempty"`
	Status            string  `json:"status,omitempty"`
}

// Stay khoảng lưu trú [checkIn, checkOut), ngày dạng YYYY-MM-DD
type Stay struct {
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	TotalNights int    `json:"totalNights"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
	RoomsCount  int    `json:"roomsCount"`
}

// Payment thông tin thanh toán kèm ảnh chụp màn hình chuyển khoản
type Payment struct {
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	Method        string  `json:"method,omitempty"`
	AdvanceAmount float64 `json:"advanceAmount,omitempty"`
	PendingAmount float64 `json:"pendingAmount,omitempty"`
	ScreenshotURL string  `json:"screenshotUrl,omitempty"`
}

type Booking struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	BookingID string  `json:"bookingId,omitempty" gorm:"index"`
	Guest     Guest   `json:"guest" gorm:"embedded;embeddedPrefix:guest_"`
	Room      RoomRef `json:"room" gorm:"embedded;embeddedPrefix:room_"`
	Stay      Stay    `json:"stay" gorm:"embedded;embeddedPrefix:stay_"`
	Payment   Payment `json:"payment" gorm:"embedded;embeddedPrefix:payment_"`
	Status    string  `json:"status"`

	// Version tăng sau mỗi lần chuyển trạng thái, dùng cho conditional write
	Version int `json:"version" gorm:"default:0"`
	// InventoryReleased đánh dấu sổ tồn phòng của booking đã được trả
	InventoryReleased bool `json:"inventoryReleased" gorm:"default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsPending cả pending và verification_pending đều là chờ xử lý
func (b *Booking) IsPending() bool {
	return b.Status == constants.BookingStatusPending ||
		b.Status == constants.BookingStatusVerificationPending
}

// RoomsCountOrDefault số phòng của booking, thiếu hoặc không hợp lệ tính là 1
func (b *Booking) RoomsCountOrDefault() int {
	if b.Stay.RoomsCount < 1 {
		return 1
	}
	return b.Stay.RoomsCount
}

// DisplayID mã hiển thị cho nhân viên, ưu tiên bookingId tự đặt
func (b *Booking) DisplayID() string {
	if b.BookingID != "" {
		return b.BookingID
	}
	return fmt.Sprintf("%d", b.ID)
}
