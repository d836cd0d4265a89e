package services

import (
	"testing"
	"time"

	"admin-panel/constants"
	apperrors "admin-panel/errors"
	"admin-panel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.RoomAvailability{}, &models.Booking{}))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, name string, stock int) models.Room {
	room := models.Room{Name: name, TotalStock: stock}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedLedger(t *testing.T, db *gorm.DB, roomID uint, date string, booked int) {
	entry := models.RoomAvailability{RoomID: roomID, Date: date, BookedCount: booked}
	require.NoError(t, db.Create(&entry).Error)
}

func ledgerCount(t *testing.T, db *gorm.DB, roomID uint, date string) int {
	var entry models.RoomAvailability
	require.NoError(t, db.Where("room_id = ? AND date = ?", roomID, date).First(&entry).Error)
	return entry.BookedCount
}

func seedBooking(t *testing.T, db *gorm.DB, b models.Booking) *models.Booking {
	require.NoError(t, db.Create(&b).Error)
	return &b
}

func TestReleaseInventoryUnknownRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, nil)

	room := seedRoom(t, db, "Deluxe", 5)
	seedLedger(t, db, room.ID, "2024-05-01", 2)

	booking := seedBooking(t, db, models.Booking{
		Room:   models.RoomRef{Name: "Không tồn tại"},
		Stay:   models.Stay{CheckIn: "2024-05-01", CheckOut: "2024-05-02", RoomsCount: 1},
		Status: constants.BookingStatusConfirmed,
	})

	err := svc.ReleaseInventory(booking)
	assert.NoError(t, err)

	// Sổ tồn phòng không bị đụng tới
	assert.Equal(t, 2, ledgerCount(t, db, room.ID, "2024-05-01"))
}

func TestReleaseInventoryDateRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, nil)

	room := seedRoom(t, db, "Deluxe", 5)
	seedLedger(t, db, room.ID, "2024-05-01", 3)
	seedLedger(t, db, room.ID, "2024-05-02", 3)
	seedLedger(t, db, room.ID, "2024-05-03", 3)

	booking := seedBooking(t, db, models.Booking{
		Room:   models.RoomRef{RoomID: room.ID, Name: "Deluxe"},
		Stay:   models.Stay{CheckIn: "2024-05-01", CheckOut: "2024-05-03", RoomsCount: 2},
		Status: constants.BookingStatusConfirmed,
	})

	require.NoError(t, svc.ReleaseInventory(booking))

	// Khoảng nửa mở: ngày check-out không bị trừ
	assert.Equal(t, 1, ledgerCount(t, db, room.ID, "2024-05-01"))
	assert.Equal(t, 1, ledgerCount(t, db, room.ID, "2024-05-02"))
	assert.Equal(t, 3, ledgerCount(t, db, room.ID, "2024-05-03"))
}

func TestReleaseInventoryRoomsCountDefault(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, nil)

	room := seedRoom(t, db, "Suite", 3)
	seedLedger(t, db, room.ID, "2024-05-01", 2)

	booking := seedBooking(t, db, models.Booking{
		Room:   models.RoomRef{RoomID: room.ID, Name: "Suite"},
		Stay:   models.Stay{CheckIn: "2024-05-01", CheckOut: "2024-05-02"},
		Status: constants.BookingStatusConfirmed,
	})

	require.NoError(t, svc.ReleaseInventory(booking))

	// RoomsCount thiếu thì trừ đúng 1, không phải 0
	assert.Equal(t, 1, ledgerCount(t, db, room.ID, "2024-05-01"))
}

func TestReleaseInventoryMissingLedgerRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, nil)

	room := seedRoom(t, db, "Deluxe", 5)
	// Chỉ có dòng cho ngày thứ hai
	seedLedger(t, db, room.ID, "2024-05-02", 4)

	booking := seedBooking(t, db, models.Booking{
		Room:   models.RoomRef{RoomID: room.ID, Name: "Deluxe"},
		Stay:   models.Stay{CheckIn: "2024-05-01", CheckOut: "2024-05-03", RoomsCount: 1},
		Status: constants.BookingStatusConfirmed,
	})

	require.NoError(t, svc.ReleaseInventory(booking))

	// Ngày thiếu dòng bị bỏ qua, ngày còn lại vẫn được trừ
	assert.Equal(t, 3, ledgerCount(t, db, room.ID, "2024-05-02"))

	var count int64
	db.Model(&models.RoomAvailability{}).Where("room_id = ? AND date = ?", room.ID, "2024-05-01").Count(&count)
	assert.Equal(t, int64(0), count, "không tạo dòng bù cho ngày thiếu")
}

func TestReleaseInventoryIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, nil)

	room := seedRoom(t, db, "Deluxe", 5)
	seedLedger(t, db, room.ID, "2024-05-01", 2)

	booking := seedBooking(t, db, models.Booking{
		Room:   models.RoomRef{RoomID: room.ID, Name: "Deluxe"},
		Stay:   models.Stay{CheckIn: "2024-05-01", CheckOut: "2024-05-02", RoomsCount: 1},
		Status: constants.BookingStatusConfirmed,
	})

	require.NoError(t, svc.ReleaseInventory(booking))
	assert.Equal(t, 1, ledgerCount(t, db, room.ID, "2024-05-01"))

	// Release lặp lại không trừ lần hai
	require.NoError(t, svc.ReleaseInventory(booking))
	assert.Equal(t, 1, ledgerCount(t, db, room.ID, "2024-05-01"))
}

func TestRejectPayment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, nil)

	room := seedRoom(t, db, "Deluxe", 5)
	seedLedger(t, db, room.ID, "2024-05-01", 1)

	booking := seedBooking(t, db, models.Booking{
		Room:    models.RoomRef{RoomID: room.ID, Name: "Deluxe", Status: constants.RoomStatusBooked},
		Stay:    models.Stay{CheckIn: "2024-05-01", CheckOut: "2024-05-02", RoomsCount: 1},
		Payment: models.Payment{Status: constants.PaymentStatusPending},
		Status:  constants.BookingStatusVerificationPending,
	})

	require.NoError(t, svc.RejectPayment(booking))

	var saved models.Booking
	require.NoError(t, db.First(&saved, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusCancelled, saved.Status)
	assert.Equal(t, constants.PaymentStatusRejected, saved.Payment.Status)
	assert.Equal(t, constants.RoomStatusAvailable, saved.Room.Status)
	assert.True(t, saved.InventoryReleased)
	assert.Equal(t, 0, ledgerCount(t, db, room.ID, "2024-05-01"))
}

func TestVerifyPayment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, nil)

	booking := seedBooking(t, db, models.Booking{
		Room:    models.RoomRef{Name: "Deluxe"},
		Stay:    models.Stay{CheckIn: "2024-05-01", CheckOut: "2024-05-02", RoomsCount: 1},
		Payment: models.Payment{Status: constants.PaymentStatusPending},
		Status:  constants.BookingStatusPending,
	})

	require.NoError(t, svc.VerifyPayment(booking))

	var saved models.Booking
	require.NoError(t, db.First(&saved, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusConfirmed, saved.Status)
	assert.Equal(t, constants.PaymentStatusVerified, saved.Payment.Status)
	assert.Equal(t, constants.RoomStatusBooked, saved.Room.Status)
	assert.Equal(t, 1, saved.Version)
}

func TestCancelBlockedForPendingBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, nil)

	room := seedRoom(t, db, "Deluxe", 5)
	seedLedger(t, db, room.ID, "2024-05-01", 2)

	booking := seedBooking(t, db, models.Booking{
		Room:    models.RoomRef{RoomID: room.ID, Name: "Deluxe"},
		Stay:    models.Stay{CheckIn: "2024-05-01", CheckOut: "2024-05-02", RoomsCount: 1},
		Payment: models.Payment{Status: constants.PaymentStatusPending},
		Status:  constants.BookingStatusPending,
	})

	err := svc.Cancel(booking)
	require.Error(t, err)

	// Trạng thái và tồn phòng không bị đụng tới, chỉ reject mới hủy được
	var saved models.Booking
	require.NoError(t, db.First(&saved, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusPending, saved.Status)
	assert.False(t, saved.InventoryReleased)
	assert.Equal(t, 2, ledgerCount(t, db, room.ID, "2024-05-01"))
}

func TestTransitionVersionConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, nil)

	booking := seedBooking(t, db, models.Booking{
		Room:   models.RoomRef{Name: "Deluxe"},
		Stay:   models.Stay{CheckIn: "2024-05-01", CheckOut: "2024-05-02", RoomsCount: 1},
		Status: constants.BookingStatusConfirmed,
	})

	// Một phiên khác đã ghi đè trước
	require.NoError(t, db.Model(&models.Booking{}).Where("id = ?", booking.ID).
		Update("version", booking.Version+1).Error)

	err := svc.Cancel(booking)
	assert.ErrorIs(t, err, apperrors.ErrVersionConflict)
}

func TestReconfirmReReservesInventory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, nil)

	room := seedRoom(t, db, "Deluxe", 5)
	seedLedger(t, db, room.ID, "2024-05-01", 2)

	booking := seedBooking(t, db, models.Booking{
		Room:   models.RoomRef{RoomID: room.ID, Name: "Deluxe"},
		Stay:   models.Stay{CheckIn: "2024-05-01", CheckOut: "2024-05-02", RoomsCount: 2},
		Status: constants.BookingStatusConfirmed,
	})

	require.NoError(t, svc.Cancel(booking))
	assert.Equal(t, 0, ledgerCount(t, db, room.ID, "2024-05-01"))

	require.NoError(t, svc.Reconfirm(booking))

	var saved models.Booking
	require.NoError(t, db.First(&saved, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusConfirmed, saved.Status)
	assert.Equal(t, constants.PaymentStatusVerified, saved.Payment.Status)
	assert.False(t, saved.InventoryReleased)
	assert.Equal(t, 2, ledgerCount(t, db, room.ID, "2024-05-01"))
}

func TestCancelThenAvailabilityScenario(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, nil)

	today := time.Now().Format(constants.DateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(constants.DateLayout)

	room := seedRoom(t, db, "Deluxe", 5)
	seedLedger(t, db, room.ID, today, 3)

	var bookings []*models.Booking
	for i := 0; i < 3; i++ {
		bookings = append(bookings, seedBooking(t, db, models.Booking{
			Room:   models.RoomRef{RoomID: room.ID, Name: "Deluxe"},
			Stay:   models.Stay{CheckIn: today, CheckOut: tomorrow, RoomsCount: 1},
			Status: constants.BookingStatusConfirmed,
		}))
	}

	var rooms []models.Room
	require.NoError(t, db.Find(&rooms).Error)

	var all []models.Booking
	require.NoError(t, db.Find(&all).Error)
	avail := AvailableToday(rooms, all, today)
	require.Len(t, avail, 1)
	assert.Equal(t, 2, avail[0].Available)

	require.NoError(t, svc.Cancel(bookings[0]))
	assert.Equal(t, 2, ledgerCount(t, db, room.ID, today))

	// Truy vấn tồn phòng tính lại từ danh sách booking, không đọc sổ
	require.NoError(t, db.Find(&all).Error)
	avail = AvailableToday(rooms, all, today)
	require.Len(t, avail, 1)
	assert.Equal(t, 3, avail[0].Available)
}
