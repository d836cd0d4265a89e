package services

import (
	"encoding/json"
	"log"

	"admin-panel/models"

	"github.com/olahol/melody"
)

// WSEvent khung sự kiện đẩy qua websocket cho trang quản trị
type WSEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// BroadcastBookingEvent thông báo trạng thái booking thay đổi cho các
// phiên quản trị đang mở, để danh sách tự làm mới
func BroadcastBookingEvent(m *melody.Melody, b *models.Booking) {
	if m == nil {
		return
	}
	payload, err := json.Marshal(WSEvent{
		Type: "booking_status",
		Data: map[string]interface{}{
			"id":        b.ID,
			"bookingId": b.DisplayID(),
			"status":    b.Status,
		},
	})
	if err != nil {
		log.Printf("Lỗi marshal sự kiện booking: %v", err)
		return
	}
	if err := m.Broadcast(payload); err != nil {
		log.Printf("Lỗi broadcast sự kiện booking: %v", err)
	}
}

// BroadcastChatMessage đẩy tin nhắn mới đến các phiên đang mở trang chat
func BroadcastChatMessage(m *melody.Melody, msg *models.ChatMessage) {
	if m == nil {
		return
	}
	payload, err := json.Marshal(WSEvent{
		Type: "chat_message",
		Data: msg,
	})
	if err != nil {
		log.Printf("Lỗi marshal tin nhắn chat: %v", err)
		return
	}
	if err := m.Broadcast(payload); err != nil {
		log.Printf("Lỗi broadcast tin nhắn chat: %v", err)
	}
}
