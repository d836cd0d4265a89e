package models

import (
	"errors"

	"admin-panel/constants"
)

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Verify(b *Booking) error
	Reject(b *Booking) error
	Cancel(b *Booking) error
	Reconfirm(b *Booking) error
}

// PendingState trạng thái chờ xác minh thanh toán
type PendingState struct{}

func (s *PendingState) Verify(b *Booking) error {
	b.Status = constants.BookingStatusConfirmed
	b.Payment.Status = constants.PaymentStatusVerified
	b.Room.Status = constants.RoomStatusBooked
	return nil
}

func (s *PendingState) Reject(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	b.Payment.Status = constants.PaymentStatusRejected
	b.Room.Status = constants.RoomStatusAvailable
	return nil
}

func (s *PendingState) Cancel(b *Booking) error {
	// Booking chờ xác minh chỉ đi qua verify hoặc reject
	return errors.New("cannot cancel a pending booking, reject it instead")
}

func (s *PendingState) Reconfirm(b *Booking) error {
	return errors.New("cannot reconfirm a pending booking")
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Verify(b *Booking) error {
	return errors.New("booking already confirmed")
}

func (s *ConfirmedState) Reject(b *Booking) error {
	return errors.New("cannot reject a confirmed booking")
}

func (s *ConfirmedState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	b.Room.Status = constants.RoomStatusAvailable
	return nil
}

func (s *ConfirmedState) Reconfirm(b *Booking) error {
	return errors.New("booking already confirmed")
}

// CancelledState trạng thái đã hủy, vẫn có thể xác nhận lại
type CancelledState struct{}

func (s *CancelledState) Verify(b *Booking) error {
	return errors.New("cannot verify a cancelled booking")
}

func (s *CancelledState) Reject(b *Booking) error {
	return errors.New("booking already cancelled")
}

func (s *CancelledState) Cancel(b *Booking) error {
	return errors.New("booking already cancelled")
}

func (s *CancelledState) Reconfirm(b *Booking) error {
	b.Status = constants.BookingStatusConfirmed
	b.Payment.Status = constants.PaymentStatusVerified
	b.Room.Status = constants.RoomStatusBooked
	return nil
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusPending, constants.BookingStatusVerificationPending:
		return &PendingState{}
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
