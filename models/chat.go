package models

import "time"

// ChatThread một hội thoại giữa khách và lễ tân
type ChatThread struct {
	ID                   uint          `json:"id" gorm:"primaryKey"`
	GuestName            string        `json:"guestName"`
	GuestEmail           string        `json:"guestEmail" gorm:"index"`
	LastMessage          string        `json:"lastMessage"`
	LastMessageTimestamp time.Time     `json:"lastMessageTimestamp" gorm:"index"`
	Unread               bool          `json:"unread" gorm:"default:false"`
	Messages             []ChatMessage `json:"messages,omitempty" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time     `gorm:"autoCreateTime" json:"createdAt"`
}

// ChatMessage một tin nhắn trong hội thoại. Sender là "guest" hoặc "admin".
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ThreadID  uint      `json:"threadId" gorm:"index"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
