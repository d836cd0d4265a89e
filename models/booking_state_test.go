package models

import (
	"testing"

	"admin-panel/constants"

	"github.com/stretchr/testify/assert"
)

func TestPendingStateTransitions(t *testing.T) {
	t.Run("verify", func(t *testing.T) {
		b := &Booking{Status: constants.BookingStatusPending}
		state := GetBookingState(b.Status)
		assert.NoError(t, state.Verify(b))
		assert.Equal(t, constants.BookingStatusConfirmed, b.Status)
		assert.Equal(t, constants.PaymentStatusVerified, b.Payment.Status)
		assert.Equal(t, constants.RoomStatusBooked, b.Room.Status)
	})

	t.Run("reject", func(t *testing.T) {
		b := &Booking{Status: constants.BookingStatusVerificationPending}
		state := GetBookingState(b.Status)
		assert.NoError(t, state.Reject(b))
		assert.Equal(t, constants.BookingStatusCancelled, b.Status)
		assert.Equal(t, constants.PaymentStatusRejected, b.Payment.Status)
		assert.Equal(t, constants.RoomStatusAvailable, b.Room.Status)
	})

	t.Run("cancel bị chặn, chỉ có verify hoặc reject", func(t *testing.T) {
		b := &Booking{
			Status:  constants.BookingStatusPending,
			Payment: Payment{Status: constants.PaymentStatusPending},
		}
		state := GetBookingState(b.Status)
		assert.Error(t, state.Cancel(b))
		assert.Equal(t, constants.BookingStatusPending, b.Status)
		assert.Equal(t, constants.PaymentStatusPending, b.Payment.Status)
	})

	t.Run("reconfirm bị chặn", func(t *testing.T) {
		b := &Booking{Status: constants.BookingStatusPending}
		state := GetBookingState(b.Status)
		assert.Error(t, state.Reconfirm(b))
	})
}

func TestConfirmedStateTransitions(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusConfirmed}
	state := GetBookingState(b.Status)

	assert.Error(t, state.Verify(b))
	assert.Error(t, state.Reject(b))
	assert.Error(t, state.Reconfirm(b))

	assert.NoError(t, state.Cancel(b))
	assert.Equal(t, constants.BookingStatusCancelled, b.Status)
	assert.Equal(t, constants.RoomStatusAvailable, b.Room.Status)
}

func TestCancelledStateTransitions(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusCancelled}
	state := GetBookingState(b.Status)

	assert.Error(t, state.Verify(b))
	assert.Error(t, state.Reject(b))
	assert.Error(t, state.Cancel(b))

	assert.NoError(t, state.Reconfirm(b))
	assert.Equal(t, constants.BookingStatusConfirmed, b.Status)
	assert.Equal(t, constants.PaymentStatusVerified, b.Payment.Status)
	assert.Equal(t, constants.RoomStatusBooked, b.Room.Status)
}

func TestGetBookingStateUnknownStatus(t *testing.T) {
	// Trạng thái lạ coi như pending để vẫn xử lý được bản ghi cũ
	state := GetBookingState("unknown")
	assert.IsType(t, &PendingState{}, state)
}

func TestRoomsCountOrDefault(t *testing.T) {
	b := &Booking{}
	assert.Equal(t, 1, b.RoomsCountOrDefault())

	b.Stay.RoomsCount = -2
	assert.Equal(t, 1, b.RoomsCountOrDefault())

	b.Stay.RoomsCount = 3
	assert.Equal(t, 3, b.RoomsCountOrDefault())
}

func TestDisplayID(t *testing.T) {
	b := &Booking{ID: 42}
	assert.Equal(t, "42", b.DisplayID())

	b.BookingID = "BK-2024-001"
	assert.Equal(t, "BK-2024-001", b.DisplayID())
}
