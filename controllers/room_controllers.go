package controllers

import (
	"encoding/json"
	"log"
	"time"

	"admin-panel/config"
	"admin-panel/dto"
	"admin-panel/models"
	"admin-panel/response"
	"admin-panel/services"

	"github.com/gin-gonic/gin"
)

const roomsCacheKey = "rooms:all"

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		TotalStock:  room.StockOrDefault(),
		Price:       room.Price,
		Description: room.Description,
		Size:        room.Size,
		Image:       room.Image,
		Images:      room.Images,
		Amenities:   room.Amenities,
	}
}

func invalidateRoomCaches() {
	if config.RedisClient == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, roomsCacheKey)
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "dashboard:stats")
}

// uploadRoomImage nhận file từ multipart form và đẩy lên host ảnh,
// không có file thì trả về chuỗi rỗng
func uploadRoomImage(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	return ImgBBClient.Upload(c.Request.Context(), fileHeader.Filename, file)
}

// GetAllRooms danh sách hạng phòng, ưu tiên cache
func GetAllRooms(c *gin.Context) {
	var rooms []models.Room

	if found, err := services.GetFromRedis(config.Ctx, config.RedisClient, roomsCacheKey, &rooms); err != nil || !found {
		if err := config.DB.Order("name").Find(&rooms).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, config.RedisClient, roomsCacheKey, rooms, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách hạng phòng vào Redis: %v", err)
		}
	}

	roomsResponse := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomsResponse = append(roomsResponse, convertToRoomResponse(room))
	}

	response.Success(c, roomsResponse)
}

// GetRoomDetail chi tiết một hạng phòng
func GetRoomDetail(c *gin.Context) {
	roomID := c.Param("id")

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

// CreateRoom tạo hạng phòng mới, ảnh chính bắt buộc với phòng mới
func CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	imageURL, err := uploadRoomImage(c)
	if err != nil {
		response.BadRequest(c, "Upload ảnh thất bại, thử lại sau")
		return
	}
	if imageURL == "" {
		imageURL = req.Image
	}
	if imageURL == "" {
		response.BadRequest(c, "Hạng phòng mới cần có ảnh chính")
		return
	}

	room := models.Room{
		Name:        req.Name,
		TotalStock:  req.TotalStock,
		Price:       req.Price,
		Description: req.Description,
		Size:        req.Size,
		Image:       imageURL,
		Images:      json.RawMessage(req.Images),
		Amenities:   json.RawMessage(req.Amenities),
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()
	response.Success(c, convertToRoomResponse(room))
}

// UpdateRoom cập nhật hạng phòng, chỉ upload ảnh mới khi có file gửi lên
func UpdateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	imageURL, err := uploadRoomImage(c)
	if err != nil {
		response.BadRequest(c, "Upload ảnh thất bại, thử lại sau")
		return
	}
	if imageURL != "" {
		room.Image = imageURL
	} else if req.Image != "" {
		room.Image = req.Image
	}

	room.Name = req.Name
	room.TotalStock = req.TotalStock
	room.Price = req.Price
	room.Description = req.Description
	room.Size = req.Size
	if req.Images != "" {
		room.Images = json.RawMessage(req.Images)
	}
	if req.Amenities != "" {
		room.Amenities = json.RawMessage(req.Amenities)
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()
	response.Success(c, convertToRoomResponse(room))
}

// DeleteRoom xóa một hạng phòng. Xác nhận yes/no nằm ở phía giao diện.
func DeleteRoom(c *gin.Context) {
	roomID := c.Param("id")

	if err := config.DB.Delete(&models.Room{}, roomID).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()
	response.Success(c, gin.H{"message": "Đã xóa hạng phòng"})
}
