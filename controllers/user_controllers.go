package controllers

import (
	"admin-panel/config"
	"admin-panel/models"
	"admin-panel/response"

	"github.com/gin-gonic/gin"
)

// GetUsers danh sách tài khoản đã đăng ký trên site
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, users)
}
