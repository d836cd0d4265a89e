package controllers

import (
	"admin-panel/config"
	"admin-panel/models"
	"admin-panel/response"

	"github.com/gin-gonic/gin"
)

// GetReviews danh sách đánh giá, mới nhất lên đầu
func GetReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Order("created_at DESC").Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, reviews)
}

// DeleteReview gỡ một đánh giá khỏi trang chủ
func DeleteReview(c *gin.Context) {
	reviewID := c.Param("id")

	res := config.DB.Delete(&models.Review{}, reviewID)
	if res.Error != nil {
		response.ServerError(c)
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, gin.H{"message": "Đã xóa đánh giá"})
}
