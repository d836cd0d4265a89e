package controllers

import (
	"time"

	"admin-panel/config"
	"admin-panel/dto"
	"admin-panel/models"
	"admin-panel/response"
	"admin-panel/services"

	"github.com/gin-gonic/gin"
)

// GetChatThreads danh sách hội thoại, tin nhắn mới nhất lên đầu
func GetChatThreads(c *gin.Context) {
	var threads []models.ChatThread
	if err := config.DB.Order("last_message_timestamp DESC").Find(&threads).Error; err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.ChatThreadItem, 0, len(threads))
	for _, t := range threads {
		items = append(items, dto.ChatThreadItem{
			ID:                   t.ID,
			GuestName:            t.GuestName,
			GuestEmail:           t.GuestEmail,
			LastMessage:          t.LastMessage,
			LastMessageTimestamp: t.LastMessageTimestamp,
			Unread:               t.Unread,
		})
	}

	response.Success(c, items)
}

// GetChatMessages tin nhắn của một hội thoại theo thứ tự thời gian,
// mở hội thoại thì đánh dấu đã đọc
func GetChatMessages(c *gin.Context) {
	threadID := c.Param("id")

	var thread models.ChatThread
	if err := config.DB.First(&thread, threadID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var messages []models.ChatMessage
	if err := config.DB.Where("thread_id = ?", thread.ID).Order("created_at").Find(&messages).Error; err != nil {
		response.ServerError(c)
		return
	}

	if thread.Unread {
		config.DB.Model(&thread).Update("unread", false)
	}

	response.Success(c, messages)
}

// ReplyChat lễ tân trả lời một hội thoại, cập nhật tin nhắn cuối của
// thread và đẩy qua websocket
func ReplyChat(c *gin.Context) {
	var req dto.ChatReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var thread models.ChatThread
	if err := config.DB.First(&thread, req.ThreadID).Error; err != nil {
		response.NotFound(c)
		return
	}

	message := models.ChatMessage{
		ThreadID: thread.ID,
		Sender:   "admin",
		Text:     req.Text,
	}
	if err := config.DB.Create(&message).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&thread).Updates(map[string]interface{}{
		"last_message":           req.Text,
		"last_message_timestamp": time.Now(),
		"unread":                 false,
	}).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.BroadcastChatMessage(WSHub, &message)

	response.Success(c, message)
}

// DeleteChatThread xóa một hội thoại cùng toàn bộ tin nhắn của nó
func DeleteChatThread(c *gin.Context) {
	threadID := c.Param("id")

	var thread models.ChatThread
	if err := config.DB.First(&thread, threadID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Where("thread_id = ?", thread.ID).Delete(&models.ChatMessage{}).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Delete(&thread).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Đã xóa hội thoại"})
}
