package services

import (
	"testing"

	"admin-panel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixtures() []models.Booking {
	return []models.Booking{
		{ID: 1, BookingID: "BK-2024-001", Guest: models.Guest{Name: "Nguyễn Văn An"}},
		{ID: 2, BookingID: "BK-2024-002", Guest: models.Guest{Name: "Trần Thị Bình"}},
		{ID: 3, BookingID: "BK-2024-003", Guest: models.Guest{Name: "Rahul Sharma"}},
	}
}

func TestSearchBookingsEmptyQuery(t *testing.T) {
	bookings := searchFixtures()
	result := SearchBookings(bookings, "   ")
	assert.Len(t, result, len(bookings))
}

func TestSearchBookingsByID(t *testing.T) {
	result := SearchBookings(searchFixtures(), "2024-002")
	require.Len(t, result, 1)
	assert.Equal(t, uint(2), result[0].ID)
}

func TestSearchBookingsByNameIgnoresDiacritics(t *testing.T) {
	// Gõ không dấu vẫn tìm được tên có dấu
	result := SearchBookings(searchFixtures(), "nguyen van an")
	require.NotEmpty(t, result)
	assert.Equal(t, uint(1), result[0].ID)
}

func TestSearchBookingsFuzzyTypo(t *testing.T) {
	result := SearchBookings(searchFixtures(), "rahul sarma")
	require.NotEmpty(t, result)
	assert.Equal(t, uint(3), result[0].ID)
}

func TestSearchBookingsNoMatch(t *testing.T) {
	result := SearchBookings(searchFixtures(), "zzzzzzzzzz")
	assert.Empty(t, result)
}
