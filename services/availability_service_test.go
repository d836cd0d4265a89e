package services

import (
	"testing"

	"admin-panel/constants"
	"admin-panel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkBooking(roomName, checkIn, checkOut, status string, roomsCount int) models.Booking {
	return models.Booking{
		Room:   models.RoomRef{Name: roomName},
		Stay:   models.Stay{CheckIn: checkIn, CheckOut: checkOut, RoomsCount: roomsCount},
		Status: status,
	}
}

func TestAvailableTodayHalfOpenInterval(t *testing.T) {
	rooms := []models.Room{{ID: 1, Name: "Deluxe", TotalStock: 5}}

	cases := []struct {
		name     string
		booking  models.Booking
		expected int
	}{
		{"check-in hôm nay tính là chiếm", mkBooking("Deluxe", "2024-05-10", "2024-05-12", constants.BookingStatusConfirmed, 1), 4},
		{"check-out hôm nay không chiếm", mkBooking("Deluxe", "2024-05-08", "2024-05-10", constants.BookingStatusConfirmed, 1), 5},
		{"khoảng bao hôm nay", mkBooking("Deluxe", "2024-05-09", "2024-05-11", constants.BookingStatusConfirmed, 1), 4},
		{"khoảng không đêm nào", mkBooking("Deluxe", "2024-05-10", "2024-05-10", constants.BookingStatusConfirmed, 1), 5},
		{"khoảng trong quá khứ", mkBooking("Deluxe", "2024-05-01", "2024-05-03", constants.BookingStatusConfirmed, 1), 5},
		{"khoảng trong tương lai", mkBooking("Deluxe", "2024-05-20", "2024-05-22", constants.BookingStatusConfirmed, 1), 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := AvailableToday(rooms, []models.Booking{tc.booking}, "2024-05-10")
			require.Len(t, result, 1)
			assert.Equal(t, tc.expected, result[0].Available)
		})
	}
}

func TestAvailableTodaySkipsCancelledAndInvalid(t *testing.T) {
	rooms := []models.Room{{ID: 1, Name: "Deluxe", TotalStock: 5}}
	bookings := []models.Booking{
		mkBooking("Deluxe", "2024-05-10", "2024-05-12", constants.BookingStatusCancelled, 2),
		mkBooking("Deluxe", "", "2024-05-12", constants.BookingStatusConfirmed, 2),
		mkBooking("Deluxe", "2024-05-10", "", constants.BookingStatusConfirmed, 2),
		mkBooking("Deluxe", "2024-05-10", "2024-05-12", constants.BookingStatusPending, 1),
	}

	result := AvailableToday(rooms, bookings, "2024-05-10")
	require.Len(t, result, 1)
	// Chỉ booking pending hợp lệ được tính, booking hủy và thiếu ngày thì không
	assert.Equal(t, 4, result[0].Available)
}

func TestAvailableTodayFloorsAtZero(t *testing.T) {
	rooms := []models.Room{{ID: 1, Name: "Deluxe", TotalStock: 2}}
	bookings := []models.Booking{
		mkBooking("Deluxe", "2024-05-10", "2024-05-12", constants.BookingStatusConfirmed, 3),
	}

	result := AvailableToday(rooms, bookings, "2024-05-10")
	require.Len(t, result, 1)
	assert.Equal(t, 0, result[0].Available, "overbooking không được trả số âm")
}

func TestAvailableTodayDefaultStock(t *testing.T) {
	rooms := []models.Room{{ID: 1, Name: "Deluxe"}}

	result := AvailableToday(rooms, nil, "2024-05-10")
	require.Len(t, result, 1)
	assert.Equal(t, constants.DefaultTotalStock, result[0].Total)
	assert.Equal(t, constants.DefaultTotalStock, result[0].Available)
}

func TestAvailableTodayRoomsCountDefault(t *testing.T) {
	rooms := []models.Room{{ID: 1, Name: "Deluxe", TotalStock: 5}}
	bookings := []models.Booking{
		mkBooking("Deluxe", "2024-05-10", "2024-05-12", constants.BookingStatusConfirmed, 0),
	}

	result := AvailableToday(rooms, bookings, "2024-05-10")
	require.Len(t, result, 1)
	assert.Equal(t, 4, result[0].Available)
}

func TestAvailableTodayUnmatchedBookingName(t *testing.T) {
	rooms := []models.Room{{ID: 1, Name: "Deluxe", TotalStock: 5}}
	bookings := []models.Booking{
		mkBooking("Hạng phòng đã xóa", "2024-05-10", "2024-05-12", constants.BookingStatusConfirmed, 2),
	}

	result := AvailableToday(rooms, bookings, "2024-05-10")
	require.Len(t, result, 1)
	// Booking trỏ tới hạng phòng không tồn tại không ảnh hưởng hạng khác
	assert.Equal(t, 5, result[0].Available)
}

func TestAvailableTodayMultipleRooms(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, Name: "Deluxe", TotalStock: 5},
		{ID: 2, Name: "Suite", TotalStock: 3},
	}
	bookings := []models.Booking{
		mkBooking("Deluxe", "2024-05-10", "2024-05-11", constants.BookingStatusConfirmed, 2),
		mkBooking("Suite", "2024-05-09", "2024-05-12", constants.BookingStatusConfirmed, 1),
		mkBooking("Suite", "2024-05-10", "2024-05-11", constants.BookingStatusVerificationPending, 1),
	}

	result := AvailableToday(rooms, bookings, "2024-05-10")
	require.Len(t, result, 2)
	assert.Equal(t, 3, result[0].Available)
	assert.Equal(t, 1, result[1].Available)
}
