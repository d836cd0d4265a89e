package constants

// User role
const (
	RoleUser  = 0
	RoleAdmin = 1
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status
const (
	BookingStatusPending             = "pending"
	BookingStatusVerificationPending = "verification_pending"
	BookingStatusConfirmed           = "confirmed"
	BookingStatusCancelled           = "cancelled"
)

// Payment status
const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusVerified = "verified"
	PaymentStatusRejected = "rejected"
)

// Room status hiển thị trên booking
const (
	RoomStatusAvailable = "available"
	RoomStatusBooked    = "booked"
)

// DateLayout định dạng ngày lưu trên booking và sổ tồn phòng
const DateLayout = "2006-01-02"

// DefaultTotalStock số phòng mặc định của một hạng phòng khi chưa cấu hình
const DefaultTotalStock = 5
