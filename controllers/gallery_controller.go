package controllers

import (
	"admin-panel/config"
	"admin-panel/dto"
	"admin-panel/models"
	"admin-panel/response"

	"github.com/gin-gonic/gin"
)

// GetGallery ảnh thư viện trang giới thiệu, mới nhất lên đầu
func GetGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := config.DB.Order("created_at DESC").Find(&images).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, images)
}

// AddGalleryImage upload một ảnh mới vào thư viện
func AddGalleryImage(c *gin.Context) {
	var req dto.GalleryAddRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

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

	image := models.GalleryImage{
		URL:     url,
		Caption: req.Caption,
	}
	if err := config.DB.Create(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, image)
}

// DeleteGalleryImage gỡ một ảnh khỏi thư viện. Ảnh trên host ngoài không
// bị xóa, chỉ bỏ tham chiếu.
func DeleteGalleryImage(c *gin.Context) {
	imageID := c.Param("id")

	res := config.DB.Delete(&models.GalleryImage{}, imageID)
	if res.Error != nil {
		response.ServerError(c)
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, gin.H{"message": "Đã xóa ảnh"})
}
