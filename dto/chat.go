package dto

import "time"

// ChatReplyRequest tin nhắn lễ tân gửi vào một hội thoại
type ChatReplyRequest struct {
	ThreadID uint   `json:"threadId" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

// ChatThreadItem dòng hội thoại trong danh sách, sắp theo tin mới nhất
type ChatThreadItem struct {
	ID                   uint      `json:"id"`
	GuestName            string    `json:"guestName"`
	GuestEmail           string    `json:"guestEmail"`
	LastMessage          string    `json:"lastMessage"`
	LastMessageTimestamp time.Time `json:"lastMessageTimestamp"`
	Unread               bool      `json:"unread"`
}
