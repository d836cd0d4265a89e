package controllers

import (
	"errors"
	"log"
	"sort"
	"strconv"
	"time"

	"admin-panel/config"
	"admin-panel/constants"
	"admin-panel/dto"
	apperrors "admin-panel/errors"
	"admin-panel/models"
	"admin-panel/response"
	"admin-panel/services"

	"github.com/gin-gonic/gin"
)

const bookingsCacheKey = "bookings:all"

func convertToBookingListItem(b models.Booking) dto.BookingListItem {
	return dto.BookingListItem{
		ID:          b.ID,
		BookingID:   b.DisplayID(),
		GuestName:   b.Guest.Name,
		GuestEmail:  b.Guest.Email,
		RoomName:    b.Room.Name,
		CheckIn:     b.Stay.CheckIn,
		CheckOut:    b.Stay.CheckOut,
		TotalAmount: b.Payment.TotalAmount,
		Status:      b.Status,
		Version:     b.Version,
		CreatedAt:   b.CreatedAt,
	}
}

// loadAllBookings lấy toàn bộ booking, ưu tiên cache Redis
func loadAllBookings() ([]models.Booking, error) {
	var allBookings []models.Booking

	if found, err := services.GetFromRedis(config.Ctx, config.RedisClient, bookingsCacheKey, &allBookings); err != nil || !found {
		if err := config.DB.Find(&allBookings).Error; err != nil {
			return nil, err
		}

		if err := services.SetToRedis(config.Ctx, config.RedisClient, bookingsCacheKey, allBookings, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách booking vào Redis: %v", err)
		}
	}

	return allBookings, nil
}

func invalidateBookingCaches() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, config.RedisClient, "bookings:*"); err != nil {
		log.Printf("Lỗi khi xóa cache bookings: %v", err)
	}
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "dashboard:stats")
}

// GetBookings danh sách booking, lọc theo trạng thái và tìm theo mã/tên
// khách. Filter "pending" bao luôn verification_pending.
func GetBookings(c *gin.Context) {
	allBookings, err := loadAllBookings()
	if err != nil {
		response.ServerError(c)
		return
	}

	statusFilter := c.Query("status")
	searchQuery := c.Query("search")

	filtered := make([]models.Booking, 0, len(allBookings))
	for _, b := range allBookings {
		if statusFilter != "" {
			if statusFilter == constants.BookingStatusPending {
				if !b.IsPending() {
					continue
				}
			} else if b.Status != statusFilter {
				continue
			}
		}
		filtered = append(filtered, b)
	}

	if searchQuery != "" {
		filtered = services.SearchBookings(filtered, searchQuery)
	} else {
		// Mới nhất lên đầu
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	total := len(filtered)

	start := page * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]dto.BookingListItem, 0, end-start)
	for _, b := range filtered[start:end] {
		items = append(items, convertToBookingListItem(b))
	}

	response.SuccessWithPagination(c, items, page, limit, total)
}

// GetBookingDetail chi tiết một booking, gồm cả thanh toán và lưu trú
func GetBookingDetail(c *gin.Context) {
	bookingID := c.Param("id")

	var booking models.Booking
	if err := config.DB.First(&booking, bookingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, booking)
}

// ChangeBookingStatus thực hiện một hành động vòng đời trên booking:
// verify, reject, cancel hoặc reconfirm. Reject và cancel trả tồn phòng,
// reconfirm giữ lại nếu tồn phòng đã được trả trước đó.
func ChangeBookingStatus(c *gin.Context) {
	var req dto.BookingActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	svc := services.NewBookingService(config.DB, nil)

	booking, err := svc.GetByID(req.ID)
	if err != nil {
		response.NotFound(c)
		return
	}

	// Version client gửi lên phải là version client đã thấy
	if req.Version != booking.Version {
		response.Conflict(c, "Booking đã bị thay đổi bởi phiên khác, tải lại danh sách")
		return
	}

	switch req.Action {
	case "verify":
		err = svc.VerifyPayment(booking)
	case "reject":
		err = svc.RejectPayment(booking)
	case "cancel":
		err = svc.Cancel(booking)
	case "reconfirm":
		err = svc.Reconfirm(booking)
	default:
		response.BadRequest(c, "Hành động không hợp lệ")
		return
	}

	if err != nil {
		if errors.Is(err, apperrors.ErrVersionConflict) {
			response.Conflict(c, "Booking đã bị thay đổi bởi phiên khác, tải lại danh sách")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	invalidateBookingCaches()
	services.BroadcastBookingEvent(WSHub, booking)

	response.Success(c, gin.H{
		"message": "Trạng thái booking đã được cập nhật",
		"status":  booking.Status,
		"version": booking.Version,
	})
}
