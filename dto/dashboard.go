package dto

import "admin-panel/services"

// DashboardResponse số liệu tổng hợp cho trang dashboard
type DashboardResponse struct {
	TotalBookings  int                              `json:"totalBookings"`
	TotalRevenue   float64                          `json:"totalRevenue"`
	TotalRoomTypes int                              `json:"totalRoomTypes"`
	RecentBookings []BookingListItem                `json:"recentBookings"`
	AvailableToday []services.RoomAvailabilityToday `json:"availableToday"`
}

// VisitStat lượt truy cập gộp theo ngày hoặc theo trang
type VisitStat struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
