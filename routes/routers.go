package routes

import (
	"admin-panel/config"
	"admin-panel/constants"
	"admin-panel/controllers"
	middlewares "admin-panel/middleware"
	"admin-panel/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// SetupRoutes đăng ký toàn bộ route của trang quản trị. Mọi route mutate
// dữ liệu yêu cầu role admin trong token.
func SetupRoutes(router *gin.Engine, m *melody.Melody) {
	controllers.Init(m, services.NewImgBBClient(config.ImgBB.Endpoint, config.ImgBB.APIKey))

	admin := middlewares.AuthMiddleware(constants.RoleAdmin)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", admin, controllers.GetProfile)

	v1.GET("/bookings", admin, controllers.GetBookings)
	v1.GET("/bookings/:id", admin, controllers.GetBookingDetail)
	v1.PUT("/bookingStatus", admin, controllers.ChangeBookingStatus)

	v1.GET("/rooms", controllers.GetAllRooms)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.POST("/rooms", admin, controllers.CreateRoom)
	v1.PUT("/roomUpdate", admin, controllers.UpdateRoom)
	v1.DELETE("/rooms/:id", admin, controllers.DeleteRoom)

	v1.GET("/dashboard", admin, controllers.GetDashboard)

	v1.GET("/reviews", admin, controllers.GetReviews)
	v1.DELETE("/reviews/:id", admin, controllers.DeleteReview)

	v1.GET("/chats", admin, controllers.GetChatThreads)
	v1.GET("/chats/:id/messages", admin, controllers.GetChatMessages)
	v1.POST("/chats/reply", admin, controllers.ReplyChat)
	v1.DELETE("/chats/:id", admin, controllers.DeleteChatThread)

	v1.GET("/gallery", admin, controllers.GetGallery)
	v1.POST("/gallery", admin, controllers.AddGalleryImage)
	v1.DELETE("/gallery/:id", admin, controllers.DeleteGalleryImage)

	v1.GET("/content/:section", controllers.GetContent)
	v1.PUT("/content/:section", admin, controllers.UpdateContent)
	v1.POST("/upload", admin, controllers.UploadContentImage)

	v1.POST("/visits", controllers.RecordSiteVisit)
	v1.GET("/visits", admin, controllers.GetSiteVisits)

	v1.GET("/users", admin, controllers.GetUsers)
}
