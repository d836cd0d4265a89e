package services

import (
	"time"

	"admin-panel/constants"
	apperrors "admin-panel/errors"
	"admin-panel/models"
	"admin-panel/services/logger"

	"gorm.io/gorm"
)

// BookingService điều khiển vòng đời booking và đối soát sổ tồn phòng.
// Các bước ghi là các call độc lập, không bọc transaction chung: cập nhật
// trạng thái thành công nhưng trả tồn phòng thất bại sẽ để lại trạng thái
// áp dụng dở, caller không được coi cả cụm là nguyên tử.
type BookingService struct {
	db  *gorm.DB
	log logger.Logger
}

// NewBookingService tạo instance mới của BookingService
func NewBookingService(db *gorm.DB, log logger.Logger) *BookingService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.LevelFromEnv()).WithComponent("booking")
	}
	return &BookingService{db: db, log: log}
}

// GetByID lấy booking theo id
func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// VerifyPayment xác minh thanh toán: pending -> confirmed
func (s *BookingService) VerifyPayment(b *models.Booking) error {
	return s.transition(b, models.BookingState.Verify)
}

// RejectPayment từ chối thanh toán: pending -> cancelled, trả tồn phòng
func (s *BookingService) RejectPayment(b *models.Booking) error {
	if err := s.transition(b, models.BookingState.Reject); err != nil {
		return err
	}
	return s.ReleaseInventory(b)
}

// Cancel hủy booking đã xác nhận, trả tồn phòng
func (s *BookingService) Cancel(b *models.Booking) error {
	if err := s.transition(b, models.BookingState.Cancel); err != nil {
		return err
	}
	return s.ReleaseInventory(b)
}

// Reconfirm xác nhận lại booking đã hủy. Nếu tồn phòng của booking đã được
// trả trước đó thì giữ lại số phòng cho khoảng lưu trú, tránh double-book.
func (s *BookingService) Reconfirm(b *models.Booking) error {
	if err := s.transition(b, models.BookingState.Reconfirm); err != nil {
		return err
	}
	return s.reserveInventory(b)
}

// transition áp state machine lên bản sao rồi ghi có điều kiện theo version.
// Version không khớp nghĩa là một phiên nhân viên khác đã ghi đè trước.
func (s *BookingService) transition(b *models.Booking, apply func(models.BookingState, *models.Booking) error) error {
	next := *b
	state := models.GetBookingState(b.Status)
	if err := apply(state, &next); err != nil {
		return err
	}

	res := s.db.Model(&models.Booking{}).
		Where("id = ? AND version = ?", b.ID, b.Version).
		Updates(map[string]interface{}{
			"status":         next.Status,
			"payment_status": next.Payment.Status,
			"room_status":    next.Room.Status,
			"version":        b.Version + 1,
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrVersionConflict
	}

	b.Status = next.Status
	b.Payment.Status = next.Payment.Status
	b.Room.Status = next.Room.Status
	b.Version++
	return nil
}

// ReleaseInventory trả lại tồn phòng cho từng ngày trong [checkIn, checkOut).
// Best-effort: không nguyên tử trên cả dải ngày, ngày thiếu dòng sổ chỉ log
// rồi đi tiếp. Marker InventoryReleased chặn release lặp lại trừ hai lần.
func (s *BookingService) ReleaseInventory(b *models.Booking) error {
	if b.InventoryReleased {
		s.log.Info("Booking %s đã trả tồn phòng trước đó, bỏ qua", b.DisplayID())
		return nil
	}

	roomID, ok := s.resolveRoom(b)
	if !ok {
		s.log.Warn("Không tìm thấy hạng phòng %q cho booking %s, bỏ qua trả tồn phòng", b.Room.Name, b.DisplayID())
		return nil
	}

	k := b.RoomsCountOrDefault()
	if err := s.adjustLedger(roomID, b.Stay.CheckIn, b.Stay.CheckOut, -k); err != nil {
		return err
	}

	if err := s.db.Model(&models.Booking{}).Where("id = ?", b.ID).
		Update("inventory_released", true).Error; err != nil {
		return err
	}
	b.InventoryReleased = true
	return nil
}

// reserveInventory giữ lại tồn phòng khi reconfirm, chỉ khi trước đó đã trả
func (s *BookingService) reserveInventory(b *models.Booking) error {
	if !b.InventoryReleased {
		return nil
	}

	roomID, ok := s.resolveRoom(b)
	if !ok {
		s.log.Warn("Không tìm thấy hạng phòng %q cho booking %s, bỏ qua giữ tồn phòng", b.Room.Name, b.DisplayID())
		return nil
	}

	k := b.RoomsCountOrDefault()
	if err := s.adjustLedger(roomID, b.Stay.CheckIn, b.Stay.CheckOut, k); err != nil {
		return err
	}

	if err := s.db.Model(&models.Booking{}).Where("id = ?", b.ID).
		Update("inventory_released", false).Error; err != nil {
		return err
	}
	b.InventoryReleased = false
	return nil
}

// resolveRoom ưu tiên RoomID, fallback khớp đúng tên cho bản ghi cũ.
// Tên trùng nhau thì lấy dòng đầu tiên, không kiểm tra tính duy nhất.
func (s *BookingService) resolveRoom(b *models.Booking) (uint, bool) {
	if b.Room.RoomID != 0 {
		var room models.Room
		if err := s.db.First(&room, b.Room.RoomID).Error; err == nil {
			return room.ID, true
		}
		s.log.Info("RoomID %d trên booking %s không còn tồn tại, thử theo tên", b.Room.RoomID, b.DisplayID())
	}

	if b.Room.Name == "" {
		return 0, false
	}

	var room models.Room
	if err := s.db.Where("name = ?", b.Room.Name).Order("id").First(&room).Error; err != nil {
		return 0, false
	}
	return room.ID, true
}

// adjustLedger cộng delta vào booked_count của từng ngày trong [from, to).
// Mỗi UPDATE nguyên tử trên một dòng, cả vòng lặp thì không.
func (s *BookingService) adjustLedger(roomID uint, from, to string, delta int) error {
	start, err := time.Parse(constants.DateLayout, from)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Ngày check-in không hợp lệ", err)
	}
	end, err := time.Parse(constants.DateLayout, to)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Ngày check-out không hợp lệ", err)
	}

	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(constants.DateLayout)
		res := s.db.Model(&models.RoomAvailability{}).
			Where("room_id = ? AND date = ?", roomID, dateStr).
			Update("booked_count", gorm.Expr("booked_count + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			s.log.Warn("Không có dòng tồn phòng cho (room %d, %s), bỏ qua", roomID, dateStr)
		}
	}
	return nil
}
