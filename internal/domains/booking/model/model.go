package model

import (
	"time"

	gModel "epsec/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldBookingReference = "booking_reference"
	FieldUserID           = "user_id"
	FieldDestinationID    = "destination_id"
	FieldPackageID        = "package_id"
	FieldStatus           = "status"
	FieldFullName         = "full_name"
	FieldEmail            = "email"
	FieldTravelDate       = "travel_date"
	FieldTotalPrice       = "total_price"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status machine allows moving to
// next. Confirmed and cancelled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && (next == StatusConfirmed || next == StatusCancelled)
}

// UserRevenue is an aggregation row of confirmed booking revenue
// grouped per customer. Guest bookings group by contact email.
type UserRevenue struct {
	UserID       *string `db:"user_id" json:"user_id"`
	FullName     string  `db:"full_name" json:"full_name"`
	Email        string  `db:"email" json:"email"`
	TotalRevenue float64 `db:"total_revenue" json:"total_revenue"`
	Bookings     int     `db:"bookings" json:"bookings"`
}

type Booking struct {
	ID                 string            `db:"id"`
	BookingReference   string            `db:"booking_reference"`
	UserID             *string           `db:"user_id"`
	DestinationID      *string           `db:"destination_id"`
	PackageID          *string           `db:"package_id"`
	HotelID            *string           `db:"hotel_id"`
	GuideID            *string           `db:"guide_id"`
	FullName           string            `db:"full_name"`
	Email              string            `db:"email"`
	Phone              *string           `db:"phone"`
	TravelDate         time.Time         `db:"travel_date"`
	EndDate            *time.Time        `db:"end_date"`
	NumTravelers       int               `db:"num_travelers"`
	RoomType           *string           `db:"room_type"`
	CarType            *string           `db:"car_type"`
	AdditionalServices gModel.StringList `db:"additional_services"`
	TotalPrice         float64           `db:"total_price"`
	Status             Status            `db:"status"`
	Notes              *string           `db:"notes"`
	gModel.Metadata
}
