package controllers

import (
	"log"
	"sort"
	"time"

	"admin-panel/config"
	"admin-panel/constants"
	"admin-panel/dto"
	"admin-panel/models"
	"admin-panel/response"
	"admin-panel/services"

	"github.com/gin-gonic/gin"
)

const dashboardCacheKey = "dashboard:stats"

// GetDashboard số liệu tổng hợp: tổng booking, doanh thu, tồn phòng hôm
// nay và 5 booking gần nhất. Tồn phòng tính lại từ toàn bộ booking tại
// thời điểm gọi, không đọc sổ tồn phòng.
func GetDashboard(c *gin.Context) {
	var cached dto.DashboardResponse
	if found, err := services.GetFromRedis(config.Ctx, config.RedisClient, dashboardCacheKey, &cached); err == nil && found {
		response.Success(c, cached)
		return
	}

	var rooms []models.Room
	if err := config.DB.Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := config.DB.Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var totalRevenue float64
	for _, b := range bookings {
		if b.Status == constants.BookingStatusCancelled {
			continue
		}
		if b.Payment.Status == constants.PaymentStatusPaid || b.Payment.Status == constants.PaymentStatusVerified {
			totalRevenue += b.Payment.TotalAmount
		}
	}

	// Ngày hiện tại theo lịch địa phương của server
	today := time.Now().Format(constants.DateLayout)
	availability := services.AvailableToday(rooms, bookings, today)

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	recentCount := 5
	if len(bookings) < recentCount {
		recentCount = len(bookings)
	}
	recent := make([]dto.BookingListItem, 0, recentCount)
	for _, b := range bookings[:recentCount] {
		recent = append(recent, convertToBookingListItem(b))
	}

	result := dto.DashboardResponse{
		TotalBookings:  len(bookings),
		TotalRevenue:   totalRevenue,
		TotalRoomTypes: len(rooms),
		RecentBookings: recent,
		AvailableToday: availability,
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, dashboardCacheKey, result, 2*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu dashboard vào Redis: %v", err)
	}

	response.Success(c, result)
}
