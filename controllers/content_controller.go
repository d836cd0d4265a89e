package controllers

import (
	"errors"

	"admin-panel/config"
	"admin-panel/dto"
	"admin-panel/models"
	"admin-panel/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetContent nội dung một mục của site (vd: dining)
func GetContent(c *gin.Context) {
	section := c.Param("section")

	var content models.ContentSection
	if err := config.DB.Where("section = ?", section).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Mục chưa có nội dung, trả về khung rỗng
			response.Success(c, models.ContentSection{Section: section})
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, content)
}

// UpdateContent ghi đè toàn bộ nội dung một mục, chưa có thì tạo mới.
// Ảnh trong Images là URL đã upload qua /upload trước đó.
func UpdateContent(c *gin.Context) {
	section := c.Param("section")

	var req dto.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var content models.ContentSection
	err := config.DB.Where("section = ?", section).First(&content).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		response.ServerError(c)
		return
	}

	content.Section = section
	content.Title = req.Title
	content.Body = req.Body
	content.Images = req.Images

	if err := config.DB.Save(&content).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, content)
}

// UploadContentImage upload một ảnh rời và trả về URL, dùng cho các form
// nội dung trước khi lưu
func UploadContentImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Cần chọn một ảnh để upload")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ServerError(c)
		return
	}
	defer file.Close()

	url, err := ImgBBClient.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		response.BadRequest(c, "Upload ảnh thất bại, thử lại sau")
		return
	}

	response.Success(c, gin.H{"url": url})
}
