package dto

import (
	bookingModel "epsec/internal/domains/booking/model"
	bookingDto "epsec/internal/domains/booking/model/dto"
)

type StatsResponse struct {
	Users             int                          `json:"users"`
	Destinations      int                          `json:"destinations"`
	Packages          int                          `json:"packages"`
	Hotels            int                          `json:"hotels"`
	Guides            int                          `json:"guides"`
	TotalBookings     int                          `json:"total_bookings"`
	PendingBookings   int                          `json:"pending_bookings"`
	ConfirmedBookings int                          `json:"confirmed_bookings"`
	NewInquiries      int                          `json:"new_inquiries"`
	TotalRevenue      float64                      `json:"total_revenue"`
	RecentBookings    []bookingDto.BookingResponse `json:"recent_bookings"`
}

type RevenueResponse struct {
	TotalRevenue float64                    `json:"total_revenue"`
	UserRevenue  []bookingModel.UserRevenue `json:"user_revenue"`
}
